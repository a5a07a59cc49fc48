package service

import (
	"time"

	"github.com/pairlink/tile-link-game/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// ActivateResult contains the result of a tile activation
type ActivateResult struct {
	Outcome   engine.ActivationOutcome `json:"outcome"`
	GameState *engine.GameState        `json:"game_state"`
	Armed     *engine.Point            `json:"armed,omitempty"`
	Removed   []engine.Point           `json:"removed,omitempty"`
	Path      engine.Path              `json:"path,omitempty"`
	Kind      engine.TileKind          `json:"kind,omitempty"`
	Resolving bool                     `json:"resolving,omitempty"`
	Shuffled  bool                     `json:"shuffled,omitempty"`
	Complete  bool                     `json:"complete,omitempty"`
	Message   string                   `json:"message,omitempty"`
	Events    []GameEvent              `json:"events,omitempty"`

	// Decision aids
	HasValidMoves bool `json:"has_valid_moves"`
	Remaining     int  `json:"remaining"`
}

// ShuffleResult contains the result of a manual reshuffle
type ShuffleResult struct {
	Redistributed int               `json:"redistributed"`
	HasValidMoves bool              `json:"has_valid_moves"`
	GameState     *engine.GameState `json:"game_state"`
	Events        []GameEvent       `json:"events,omitempty"`
}

// HintResult points at a connectable pair, when one exists
type HintResult struct {
	Found bool            `json:"found"`
	A     engine.Point    `json:"a,omitempty"`
	B     engine.Point    `json:"b,omitempty"`
	Kind  engine.TileKind `json:"kind,omitempty"`
	Path  engine.Path     `json:"path,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"` // "armed", "switched", "match", "tile_removed", "shuffle", "deadlock_shuffle", "game_complete", "restart"
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Cells     []engine.Point `json:"cells,omitempty"`
}

// HistoryOptions configures match history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated match history
type HistoryResponse struct {
	Matches      []engine.MatchRecord `json:"matches"`
	TotalMatches int                  `json:"total_matches"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
	HasNext      bool                 `json:"has_next"`
	HasPrevious  bool                 `json:"has_previous"`
}

// ConfigInfo provides information about a board configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
	TileKinds   int    `json:"tile_kinds"`
}
