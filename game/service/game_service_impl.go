package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pairlink/tile-link-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Activate forwards a tile activation to a session's engine and enriches the
// outcome with gameplay events
func (s *gameServiceImpl) Activate(ctx context.Context, sessionID string, row, col int) (*ActivateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	activation := sess.Engine.ActivateTile(row, col)
	state := sess.Engine.GetState()

	result := &ActivateResult{
		Outcome:       activation.Outcome,
		GameState:     state,
		Armed:         activation.Armed,
		Removed:       activation.Removed,
		Path:          activation.Path,
		Kind:          activation.Kind,
		Resolving:     activation.Resolving,
		Shuffled:      activation.Shuffled,
		Complete:      activation.Complete,
		Message:       activation.Message,
		Remaining:     state.Remaining,
		HasValidMoves: sess.Engine.HasValidMoves(),
	}
	result.Events = s.extractActivationEvents(activation, state)

	return result, nil
}

// Shuffle redistributes a session's remaining tiles
func (s *gameServiceImpl) Shuffle(ctx context.Context, sessionID string) (*ShuffleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	redistributed := sess.Engine.ShuffleRemainingTiles()
	state := sess.Engine.GetState()

	return &ShuffleResult{
		Redistributed: redistributed,
		HasValidMoves: sess.Engine.HasValidMoves(),
		GameState:     state,
		Events: []GameEvent{newEvent("shuffle",
			fmt.Sprintf("Reshuffled %d tiles", redistributed))},
	}, nil
}

// Restart re-deals a session's board with the same configuration
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.Restart(), nil
}

// Hint returns the first connectable pair for a session
func (s *gameServiceImpl) Hint(ctx context.Context, sessionID string) (*HintResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	match, found := sess.Engine.Hint()
	if !found {
		return &HintResult{Found: false}, nil
	}
	return &HintResult{
		Found: true,
		A:     match.A,
		B:     match.B,
		Kind:  match.Kind,
		Path:  match.Path,
	}, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMatchHistory returns paginated match history
func (s *gameServiceImpl) GetMatchHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetState().MatchHistory
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var matches []engine.MatchRecord
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			matches = append(matches, history[i])
		}
	} else {
		if start < total {
			matches = history[start:end]
		}
	}

	if matches == nil {
		matches = []engine.MatchRecord{}
	}

	return &HistoryResponse{
		Matches:      matches,
		TotalMatches: total,
		Page:         opts.Page,
		PageSize:     opts.Limit,
		TotalPages:   totalPages,
		HasNext:      opts.Page < totalPages,
		HasPrevious:  opts.Page > 1,
	}, nil
}

// ListConfigs returns available board configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific board configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a board configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// extractActivationEvents generates events from an activation outcome
func (s *gameServiceImpl) extractActivationEvents(activation *engine.ActivationResult, state *engine.GameState) []GameEvent {
	var events []GameEvent

	switch activation.Outcome {
	case engine.OutcomeArmed:
		ev := newEvent("armed", fmt.Sprintf("Tile (%d,%d) armed", activation.Armed.Row, activation.Armed.Col))
		ev.Cells = []engine.Point{*activation.Armed}
		events = append(events, ev)

	case engine.OutcomeSwitched:
		ev := newEvent("switched", fmt.Sprintf("Selection moved to (%d,%d)", activation.Armed.Row, activation.Armed.Col))
		ev.Cells = []engine.Point{*activation.Armed}
		events = append(events, ev)

	case engine.OutcomeMatched:
		ev := newEvent("match", fmt.Sprintf("Linked kind %d with %d bends", activation.Kind, activation.Path.Bends()))
		ev.Cells = activation.Removed
		events = append(events, ev)

		for _, p := range activation.Removed {
			rev := newEvent("tile_removed", fmt.Sprintf("Tile (%d,%d) removed", p.Row, p.Col))
			rev.Cells = []engine.Point{p}
			events = append(events, rev)
		}

		if activation.Shuffled {
			events = append(events, newEvent("deadlock_shuffle", "No moves left, board reshuffled"))
		}
		if activation.Complete {
			events = append(events, newEvent("game_complete", state.Message))
		}
	}

	return events
}

func newEvent(eventType, message string) GameEvent {
	return GameEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}
