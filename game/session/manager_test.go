package session

import (
	"errors"
	"testing"
	"time"

	"github.com/pairlink/tile-link-game/game/engine"
)

func testConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:        "Session Test Board",
		Description: "Board for session manager tests",
		Rows:        4,
		Columns:     4,
		TileKinds:   3,
		Seed:        42,
	}
}

func TestCreateGeneratesID(t *testing.T) {
	m := NewManager()

	session, err := m.Create("", testConfig())
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if len(session.ID) != 4 {
		t.Errorf("Expected a 4-character generated ID, got %q", session.ID)
	}
	if session.Engine == nil {
		t.Fatal("Expected session to carry an engine")
	}
	if session.Engine.GetState().Remaining != 16 {
		t.Error("Expected the engine to deal the board on creation")
	}
}

func TestCreateDuplicate(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("ab12", testConfig()); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	if _, err := m.Create("ab12", testConfig()); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
	}
	// Case-insensitive collision.
	if _, err := m.Create("AB12", testConfig()); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("Expected case-insensitive collision, got %v", err)
	}
}

func TestCreateInvalidConfig(t *testing.T) {
	m := NewManager()

	bad := testConfig()
	bad.Rows = 0
	if _, err := m.Create("", bad); err == nil {
		t.Error("Expected engine creation to fail with an invalid config")
	}
	if m.Count() != 0 {
		t.Error("Failed creation must not register a session")
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	m := NewManager()
	m.Create("AbCd", testConfig())

	if _, err := m.Get("abcd"); err != nil {
		t.Errorf("Expected case-insensitive lookup, got %v", err)
	}
	if _, err := m.Get("ABCD"); err != nil {
		t.Errorf("Expected case-insensitive lookup, got %v", err)
	}
	if _, err := m.Get("none"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	m := NewManager()

	first, err := m.GetOrCreate("game", testConfig())
	if err != nil {
		t.Fatalf("Failed to get-or-create: %v", err)
	}
	second, err := m.GetOrCreate("game", testConfig())
	if err != nil {
		t.Fatalf("Failed to get existing session: %v", err)
	}
	if first != second {
		t.Error("Expected the same session instance")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", m.Count())
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()
	m.Create("gone", testConfig())

	if err := m.Delete("GONE"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}
	if err := m.Delete("gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	m := NewManager()
	session, _ := m.Create("live", testConfig())

	before := session.LastAccessedAt
	time.Sleep(time.Millisecond)
	if err := m.UpdateLastAccessed("live"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("Expected last accessed time to advance")
	}

	if err := m.UpdateLastAccessed("none"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	m := NewManager()
	stale, _ := m.Create("old", testConfig())
	m.Create("new", testConfig())

	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 session removed, got %d", removed)
	}
	if _, err := m.Get("old"); !errors.Is(err, ErrSessionNotFound) {
		t.Error("Expected the stale session to be gone")
	}
	if _, err := m.Get("new"); err != nil {
		t.Error("Expected the fresh session to survive")
	}
}

func TestList(t *testing.T) {
	m := NewManager()
	m.Create("a1b2", testConfig())
	m.Create("c3d4", testConfig())

	if got := len(m.List()); got != 2 {
		t.Errorf("Expected 2 sessions, got %d", got)
	}
}
