package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pairlink/tile-link-game/game/engine"
	"github.com/pairlink/tile-link-game/game/service"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	// Session Management
	CreateSessionFunc func(ctx context.Context, configName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	// Game Operations
	ActivateFunc func(ctx context.Context, sessionID string, row, col int) (*service.ActivateResult, error)
	ShuffleFunc  func(ctx context.Context, sessionID string) (*service.ShuffleResult, error)
	RestartFunc  func(ctx context.Context, sessionID string) (*engine.GameState, error)
	HintFunc     func(ctx context.Context, sessionID string) (*service.HintResult, error)

	// Game State
	GetGameStateFunc    func(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetMatchHistoryFunc func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error)

	// Configuration
	ListConfigsFunc func(ctx context.Context) ([]*service.ConfigInfo, error)
	LoadConfigFunc  func(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfigFunc  func(ctx context.Context, configName string, config *engine.GameConfig) error
}

func (m *MockGameService) CreateSession(ctx context.Context, configName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, configName)
	}
	return &service.SessionInfo{
		ID:         "test-session",
		ConfigName: configName,
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:         sessionID,
		ConfigName: "test-config",
		CreatedAt:  time.Now(),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockGameService) Activate(ctx context.Context, sessionID string, row, col int) (*service.ActivateResult, error) {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, sessionID, row, col)
	}
	return &service.ActivateResult{
		Outcome:   engine.OutcomeArmed,
		GameState: &engine.GameState{},
	}, nil
}

func (m *MockGameService) Shuffle(ctx context.Context, sessionID string) (*service.ShuffleResult, error) {
	if m.ShuffleFunc != nil {
		return m.ShuffleFunc(ctx, sessionID)
	}
	return &service.ShuffleResult{GameState: &engine.GameState{}}, nil
}

func (m *MockGameService) Restart(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, sessionID)
	}
	return &engine.GameState{}, nil
}

func (m *MockGameService) Hint(ctx context.Context, sessionID string) (*service.HintResult, error) {
	if m.HintFunc != nil {
		return m.HintFunc(ctx, sessionID)
	}
	return &service.HintResult{}, nil
}

func (m *MockGameService) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	if m.GetGameStateFunc != nil {
		return m.GetGameStateFunc(ctx, sessionID)
	}
	return &engine.GameState{}, nil
}

func (m *MockGameService) GetMatchHistory(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
	if m.GetMatchHistoryFunc != nil {
		return m.GetMatchHistoryFunc(ctx, sessionID, opts)
	}
	return &service.HistoryResponse{
		Matches:    []engine.MatchRecord{},
		Page:       opts.Page,
		PageSize:   opts.Limit,
		TotalPages: 1,
	}, nil
}

func (m *MockGameService) ListConfigs(ctx context.Context) ([]*service.ConfigInfo, error) {
	if m.ListConfigsFunc != nil {
		return m.ListConfigsFunc(ctx)
	}
	return []*service.ConfigInfo{}, nil
}

func (m *MockGameService) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(ctx, configName)
	}
	return &engine.GameConfig{Name: configName}, nil
}

func (m *MockGameService) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	if m.SaveConfigFunc != nil {
		return m.SaveConfigFunc(ctx, configName, config)
	}
	return nil
}

func newTestServer(svc service.GameService) *Server {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewServer(svc, nil, log)
}

func TestHandleCreateSession(t *testing.T) {
	mock := &MockGameService{
		CreateSessionFunc: func(ctx context.Context, configName string) (*service.SessionInfo, error) {
			if configName != "classic" {
				t.Errorf("Expected config classic, got %q", configName)
			}
			return &service.SessionInfo{ID: "ab12", ConfigName: configName}, nil
		},
	}
	server := newTestServer(mock)

	body := bytes.NewBufferString(`{"config_id":"classic"}`)
	req := httptest.NewRequest("POST", "/api/sessions", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}

	var session service.SessionInfo
	if err := json.NewDecoder(w.Body).Decode(&session); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if session.ID != "ab12" {
		t.Errorf("Expected session ID ab12, got %q", session.ID)
	}
}

func TestHandleCreateSessionEmptyBody(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("POST", "/api/sessions", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Empty body should fall back to the default config, got status %d", w.Code)
	}
}

func TestHandleCreateSessionError(t *testing.T) {
	mock := &MockGameService{
		CreateSessionFunc: func(ctx context.Context, configName string) (*service.SessionInfo, error) {
			return nil, fmt.Errorf("config not found: %s", configName)
		},
	}
	server := newTestServer(mock)

	body := bytes.NewBufferString(`{"config_id":"missing"}`)
	req := httptest.NewRequest("POST", "/api/sessions", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["error"] == "" {
		t.Error("Expected an error message in the response")
	}
}

func TestHandleListSessionsSorting(t *testing.T) {
	now := time.Now()
	mock := &MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{
				{ID: "old", CreatedAt: now.Add(-2 * time.Hour), LastAccessedAt: now.Add(-2 * time.Hour)},
				{ID: "new", CreatedAt: now, LastAccessedAt: now},
			}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/sessions?sort=created&order=asc", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("Expected 2 sessions, got %d", resp.Count)
	}
	if resp.Sessions[0].ID != "old" || resp.Sessions[1].ID != "new" {
		t.Error("Sessions not sorted oldest-first with order=asc")
	}
}

func TestHandleListSessionsLimit(t *testing.T) {
	mock := &MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/sessions?limit=2", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	var resp struct {
		Count int `json:"count"`
	}
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Count != 2 {
		t.Errorf("Expected limit to cap sessions at 2, got %d", resp.Count)
	}
}

func TestHandleGetSessionNotFound(t *testing.T) {
	mock := &MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/sessions/nope", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestHandleDeleteSession(t *testing.T) {
	deleted := ""
	mock := &MockGameService{
		DeleteSessionFunc: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("DELETE", "/api/sessions/ab12", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if deleted != "ab12" {
		t.Errorf("Expected delete of ab12, got %q", deleted)
	}
}

func TestHandleActivate(t *testing.T) {
	mock := &MockGameService{
		ActivateFunc: func(ctx context.Context, sessionID string, row, col int) (*service.ActivateResult, error) {
			if sessionID != "ab12" || row != 2 || col != 3 {
				t.Errorf("Unexpected activation args: session=%s row=%d col=%d", sessionID, row, col)
			}
			return &service.ActivateResult{
				Outcome:   engine.OutcomeMatched,
				GameState: &engine.GameState{Remaining: 14},
				Removed:   []engine.Point{{Row: 2, Col: 3}, {Row: 2, Col: 5}},
				Path:      engine.Path{{Row: 2, Col: 3}, {Row: 2, Col: 5}},
				Kind:      engine.TileKind(4),
				Remaining: 14,
			}, nil
		},
	}
	server := newTestServer(mock)

	body := bytes.NewBufferString(`{"row":2,"col":3}`)
	req := httptest.NewRequest("POST", "/api/sessions/ab12/activate", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var result service.ActivateResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Outcome != engine.OutcomeMatched {
		t.Errorf("Expected matched outcome, got %v", result.Outcome)
	}
	if len(result.Removed) != 2 {
		t.Errorf("Expected 2 removed cells, got %d", len(result.Removed))
	}
}

func TestHandleActivateBadBody(t *testing.T) {
	server := newTestServer(&MockGameService{})

	body := bytes.NewBufferString(`{not json`)
	req := httptest.NewRequest("POST", "/api/sessions/ab12/activate", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestHandleShuffle(t *testing.T) {
	mock := &MockGameService{
		ShuffleFunc: func(ctx context.Context, sessionID string) (*service.ShuffleResult, error) {
			return &service.ShuffleResult{
				Redistributed: 12,
				HasValidMoves: true,
				GameState:     &engine.GameState{Remaining: 12},
			}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("POST", "/api/sessions/ab12/shuffle", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var result service.ShuffleResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.Redistributed != 12 {
		t.Errorf("Expected 12 redistributed tiles, got %d", result.Redistributed)
	}
}

func TestHandleRestart(t *testing.T) {
	mock := &MockGameService{
		RestartFunc: func(ctx context.Context, sessionID string) (*engine.GameState, error) {
			return &engine.GameState{Remaining: 16}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("POST", "/api/sessions/ab12/restart", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.State == nil || resp.State.Remaining != 16 {
		t.Error("Restart response missing fresh board state")
	}
}

func TestHandleHint(t *testing.T) {
	mock := &MockGameService{
		HintFunc: func(ctx context.Context, sessionID string) (*service.HintResult, error) {
			return &service.HintResult{
				Found: true,
				A:     engine.Point{Row: 0, Col: 0},
				B:     engine.Point{Row: 0, Col: 3},
				Kind:  engine.TileKind(2),
			}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/sessions/ab12/hint", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var hint service.HintResult
	json.NewDecoder(w.Body).Decode(&hint)
	if !hint.Found {
		t.Error("Expected a hint to be found")
	}
	if hint.B.Col != 3 {
		t.Errorf("Expected hint B at column 3, got %d", hint.B.Col)
	}
}

func TestHandleGetHistoryQueryParams(t *testing.T) {
	var got service.HistoryOptions
	mock := &MockGameService{
		GetMatchHistoryFunc: func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
			got = opts
			return &service.HistoryResponse{Page: opts.Page, PageSize: opts.Limit}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/sessions/ab12/history?page=3&limit=5&order=asc", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got.Page != 3 || got.Limit != 5 || got.Order != "asc" {
		t.Errorf("Query params not forwarded: %+v", got)
	}
}

func TestHandleGetHistoryDefaults(t *testing.T) {
	var got service.HistoryOptions
	mock := &MockGameService{
		GetMatchHistoryFunc: func(ctx context.Context, sessionID string, opts service.HistoryOptions) (*service.HistoryResponse, error) {
			got = opts
			return &service.HistoryResponse{}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/sessions/ab12/history", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if got.Page != 1 || got.Limit != 20 || got.Order != "desc" {
		t.Errorf("Expected default pagination (1, 20, desc), got %+v", got)
	}
}

func TestHandleListConfigs(t *testing.T) {
	mock := &MockGameService{
		ListConfigsFunc: func(ctx context.Context) ([]*service.ConfigInfo, error) {
			return []*service.ConfigInfo{
				{ConfigID: "classic", Name: "Classic", Rows: 8, Columns: 10, TileKinds: 12},
			}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/configs", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var configs []*service.ConfigInfo
	if err := json.NewDecoder(w.Body).Decode(&configs); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(configs) != 1 || configs[0].ConfigID != "classic" {
		t.Errorf("Unexpected config listing: %+v", configs)
	}
}

func TestHandleGetConfigStripsExtension(t *testing.T) {
	mock := &MockGameService{
		LoadConfigFunc: func(ctx context.Context, configName string) (*engine.GameConfig, error) {
			if configName != "classic" {
				t.Errorf("Expected .json suffix stripped, got %q", configName)
			}
			return &engine.GameConfig{Name: "Classic"}, nil
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/api/configs/classic.json", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
}

func TestHandleCreateConfig(t *testing.T) {
	saved := ""
	mock := &MockGameService{
		SaveConfigFunc: func(ctx context.Context, configName string, config *engine.GameConfig) error {
			saved = configName
			return nil
		},
	}
	server := newTestServer(mock)

	body := bytes.NewBufferString(`{"name":"compact","rows":4,"columns":4,"tile_kinds":3}`)
	req := httptest.NewRequest("POST", "/api/configs", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", w.Code)
	}
	if saved != "compact" {
		t.Errorf("Expected config saved under its name, got %q", saved)
	}
}

func TestHandleCreateConfigMissingName(t *testing.T) {
	server := newTestServer(&MockGameService{})

	body := bytes.NewBufferString(`{"rows":4,"columns":4}`)
	req := httptest.NewRequest("POST", "/api/configs", body)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestHandleWebSocketRequiresSession(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/ws", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 without session param, got %d", w.Code)
	}
}

func TestHandleWebSocketUnknownSession(t *testing.T) {
	mock := &MockGameService{
		GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		},
	}
	server := newTestServer(mock)

	req := httptest.NewRequest("GET", "/ws?session=nope", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404 for unknown session, got %d", w.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(&MockGameService{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	json.NewDecoder(w.Body).Decode(&resp)
	if resp["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %q", resp["status"])
	}
}
