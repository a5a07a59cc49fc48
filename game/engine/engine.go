package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvariantViolation reports internal misuse, such as resolving a pair
// that does not match. It is never reachable through ActivateTile.
var ErrInvariantViolation = errors.New("invariant violation")

// Renderer is the visual collaborator. The engine tells it when the board
// view must be rebuilt and when a tile's highlight toggles; it returns
// nothing to the core.
type Renderer interface {
	Rebuild(state *GameState)
	SetHighlight(p Point, on bool)
}

// PathAnimator is the optional animation collaborator. DrawPath receives the
// computed path and a single-shot done callback; the engine defers removing
// the matched pair until done fires. Without an animator, removal is
// synchronous.
type PathAnimator interface {
	DrawPath(path Path, done func())
}

// ActivationOutcome classifies what a tile activation did.
type ActivationOutcome string

const (
	// OutcomeIgnored means the activation hit an Empty or out-of-range cell.
	OutcomeIgnored ActivationOutcome = "ignored"
	// OutcomeArmed means the tile became the current selection.
	OutcomeArmed ActivationOutcome = "armed"
	// OutcomeSwitched means the selection moved to the activated tile.
	OutcomeSwitched ActivationOutcome = "switched"
	// OutcomeMatched means the armed tile and the activated tile linked.
	OutcomeMatched ActivationOutcome = "matched"
	// OutcomeRejected means a match resolution is still pending.
	OutcomeRejected ActivationOutcome = "rejected"
)

// ActivationResult describes the effect of a single tile activation.
type ActivationResult struct {
	Outcome   ActivationOutcome `json:"outcome"`
	Armed     *Point            `json:"armed,omitempty"`
	Removed   []Point           `json:"removed,omitempty"`
	Path      Path              `json:"path,omitempty"`
	Kind      TileKind          `json:"kind,omitempty"`
	Resolving bool              `json:"resolving,omitempty"`
	Shuffled  bool              `json:"shuffled,omitempty"`
	Deadlock  bool              `json:"deadlock,omitempty"`
	Complete  bool              `json:"complete,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// Engine provides the main interface for game operations.
type Engine interface {
	GetState() *GameState
	GetConfig() *GameConfig
	Restart() *GameState
	IsComplete() bool

	ActivateTile(row, col int) *ActivationResult
	HasValidMoves() bool
	ShuffleRemainingTiles() int
	Hint() (MatchRecord, bool)

	SetRenderer(r Renderer)
	SetPathAnimator(a PathAnimator)
	OnTileRemoved(fn func(Cell))
	OnGameComplete(fn func())
}

// pendingMatch holds a matched pair whose removal waits on the animator's
// done callback.
type pendingMatch struct {
	a, b Point
	kind TileKind
	path Path
}

// GameEngine implements the Engine interface. It owns the grid exclusively;
// all mutations happen synchronously in response to a single activation,
// apart from the one deferred boundary at the animator callback.
type GameEngine struct {
	config *GameConfig
	grid   *Grid
	rng    *rand.Rand
	sel    selector

	complete bool
	pending  *pendingMatch
	message  string

	renderer Renderer
	animator PathAnimator

	tileRemoved  func(Cell)
	gameComplete func()

	matchHistory   []MatchRecord
	totalMatches   int
	currentMatches []MatchRecord
	shuffles       int
}

// NewEngine creates a game engine for the provided configuration and deals
// the initial board.
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	config.ensureMessages()
	e := &GameEngine{
		config: config,
		rng:    newRNG(config.Seed),
	}
	e.deal()
	return e, nil
}

// NewEngineWithDefaults creates a game engine with the built-in board.
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return e
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// deal builds a fresh grid and resets per-game state.
func (e *GameEngine) deal() {
	e.grid = NewGrid(e.config.Rows, e.config.Columns, e.config.TileKinds, e.rng)
	e.sel.Disarm()
	e.pending = nil
	e.complete = false
	e.currentMatches = nil
	e.shuffles = 0
	e.message = e.config.Messages.Welcome
	if e.renderer != nil {
		e.renderer.Rebuild(e.GetState())
	}
}

// GetState returns a snapshot of the current game state.
func (e *GameEngine) GetState() *GameState {
	state := &GameState{
		Grid:              e.grid.Snapshot(),
		Rows:              e.grid.Rows(),
		Columns:           e.grid.Cols(),
		TileKinds:         e.config.TileKinds,
		Remaining:         e.grid.ActiveCount(),
		Complete:          e.complete,
		Resolving:         e.pending != nil,
		Message:           e.message,
		ConfigName:        e.config.Name,
		MatchHistory:      e.matchHistory,
		TotalMatches:      e.totalMatches,
		CurrentMatches:    e.currentMatches,
		CurrentMatchCount: len(e.currentMatches),
		ShufflesThisGame:  e.shuffles,
	}
	if armed, ok := e.sel.Armed(); ok {
		state.Armed = &Point{Row: armed.Row, Col: armed.Col}
	}
	return state
}

// GetConfig returns the engine's configuration.
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// IsComplete reports whether every cell has been cleared this game.
func (e *GameEngine) IsComplete() bool {
	return e.complete
}

// Grid exposes the underlying grid for read-only collaborators such as the
// connectivity helpers and tests.
func (e *GameEngine) Grid() *Grid {
	return e.grid
}

// Restart re-deals the board with the same configuration. Cumulative match
// history survives; only the current game segment is cleared.
func (e *GameEngine) Restart() *GameState {
	e.deal()
	return e.GetState()
}

// SetRenderer registers the visual collaborator.
func (e *GameEngine) SetRenderer(r Renderer) {
	e.renderer = r
}

// SetPathAnimator registers the optional animation collaborator.
func (e *GameEngine) SetPathAnimator(a PathAnimator) {
	e.animator = a
}

// OnTileRemoved registers the tile-removed event callback. The callback
// receives the cell coordinate with the kind it held before clearing.
func (e *GameEngine) OnTileRemoved(fn func(Cell)) {
	e.tileRemoved = fn
}

// OnGameComplete registers the completion event callback. It fires exactly
// once per game.
func (e *GameEngine) OnGameComplete(fn func()) {
	e.gameComplete = fn
}

// ActivateTile handles "a tile at (row,col) was activated". Activations on
// Empty or out-of-range cells are silently ignored. While a match resolution
// is pending at the animator, new activations are rejected.
func (e *GameEngine) ActivateTile(row, col int) *ActivationResult {
	if e.pending != nil {
		return &ActivationResult{
			Outcome:   OutcomeRejected,
			Resolving: true,
			Message:   "match resolution in progress",
		}
	}

	cell, ok := e.grid.Get(row, col)
	if !ok || cell.Kind == Empty {
		return &ActivationResult{Outcome: OutcomeIgnored}
	}
	target := Point{Row: row, Col: col}

	armed, isArmed := e.sel.Armed()
	if !isArmed {
		e.sel.Arm(target)
		e.highlight(target, true)
		return &ActivationResult{Outcome: OutcomeArmed, Armed: &target}
	}

	if path, linked := FindPath(e.grid, armed, target); linked {
		// Selection clears immediately; the removal itself may still be
		// deferred at the animator.
		e.sel.Disarm()
		e.highlight(armed, false)

		result := &ActivationResult{
			Outcome: OutcomeMatched,
			Path:    path,
			Kind:    cell.Kind,
		}
		if err := e.resolveMatch(armed, target, path, result); err != nil {
			// FindPath just succeeded, so resolveMatch cannot reject.
			panic(err)
		}
		result.Complete = e.complete
		result.Message = e.message
		return result
	}

	// Mismatch: switch the selection to the activated tile. Re-clicking the
	// armed tile takes this branch and re-arms it.
	e.highlight(armed, false)
	e.sel.Arm(target)
	e.highlight(target, true)
	e.message = e.config.Messages.Mismatch
	return &ActivationResult{Outcome: OutcomeSwitched, Armed: &target, Message: e.message}
}

// resolveMatch removes a matched pair, or schedules the removal on the
// animator when one is registered. Calling it with a non-matching or
// non-connectable pair is a programming error.
func (e *GameEngine) resolveMatch(a, b Point, path Path, result *ActivationResult) error {
	ca, okA := e.grid.Get(a.Row, a.Col)
	cb, okB := e.grid.Get(b.Row, b.Col)
	if !okA || !okB || a == b || ca.Kind == Empty || ca.Kind != cb.Kind {
		return fmt.Errorf("%w: resolveMatch(%v, %v) on a non-matching pair", ErrInvariantViolation, a, b)
	}
	if !CanConnect(e.grid, a, b) {
		return fmt.Errorf("%w: resolveMatch(%v, %v) on a non-connectable pair", ErrInvariantViolation, a, b)
	}

	if e.animator != nil {
		e.pending = &pendingMatch{a: a, b: b, kind: ca.Kind, path: path}
		e.animator.DrawPath(path, e.finishResolution)
		if result != nil {
			result.Resolving = true
		}
		return nil
	}

	e.removePair(a, b, ca.Kind, path, result)
	return nil
}

// finishResolution is the animator's single-shot done callback.
func (e *GameEngine) finishResolution() {
	if e.pending == nil {
		return
	}
	p := e.pending
	e.pending = nil
	e.removePair(p.a, p.b, p.kind, p.path, nil)
}

// removePair clears both cells atomically, records the match, emits events,
// and runs the completion and deadlock checks.
func (e *GameEngine) removePair(a, b Point, kind TileKind, path Path, result *ActivationResult) {
	e.grid.Clear(a.Row, a.Col)
	e.grid.Clear(b.Row, b.Col)

	record := MatchRecord{A: a, B: b, Kind: kind, Path: path, Bends: path.Bends()}
	e.matchHistory = append(e.matchHistory, record)
	e.currentMatches = append(e.currentMatches, record)
	e.totalMatches++
	e.message = fmt.Sprintf(e.config.Messages.Matched, e.grid.ActiveCount())

	if result != nil {
		result.Removed = []Point{a, b}
	}
	if e.tileRemoved != nil {
		e.tileRemoved(Cell{Row: a.Row, Col: a.Col, Kind: kind})
		e.tileRemoved(Cell{Row: b.Row, Col: b.Col, Kind: kind})
	}

	e.checkCompletion()
	if e.complete {
		return
	}

	if !e.HasValidMoves() {
		e.message = e.config.Messages.Deadlock
		shuffled := e.reshuffleUntilPlayable()
		if result != nil {
			result.Shuffled = shuffled
			result.Deadlock = !shuffled
		}
		if e.renderer != nil {
			e.renderer.Rebuild(e.GetState())
		}
	}
}

// checkCompletion fires the completion event exactly once per game.
func (e *GameEngine) checkCompletion() {
	if e.complete || !e.grid.IsEmpty() {
		return
	}
	e.complete = true
	e.message = e.config.Messages.Complete
	if e.gameComplete != nil {
		e.gameComplete()
	}
}

// HasValidMoves reports whether any two active tiles can connect. It never
// fails; it is a pure function of current grid state.
func (e *GameEngine) HasValidMoves() bool {
	_, ok := e.Hint()
	return ok
}

// Hint returns the first connectable pair in row-major order together with
// its path.
func (e *GameEngine) Hint() (MatchRecord, bool) {
	active := e.grid.ActiveCells()
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if active[i].Kind != active[j].Kind {
				continue
			}
			a := Point{Row: active[i].Row, Col: active[i].Col}
			b := Point{Row: active[j].Row, Col: active[j].Col}
			if path, ok := FindPath(e.grid, a, b); ok {
				return MatchRecord{A: a, B: b, Kind: active[i].Kind, Path: path, Bends: path.Bends()}, true
			}
		}
	}
	return MatchRecord{}, false
}

// ShuffleRemainingTiles compacts the surviving tiles into the grid's
// row-major prefix in random order and returns how many were redistributed.
// Any armed selection is cleared since its tile may have moved.
func (e *GameEngine) ShuffleRemainingTiles() int {
	if armed, ok := e.sel.Armed(); ok {
		e.highlight(armed, false)
		e.sel.Disarm()
	}
	moved := e.grid.ShuffleRemaining(e.rng)
	e.shuffles++
	e.message = e.config.Messages.Shuffled
	if e.renderer != nil {
		e.renderer.Rebuild(e.GetState())
	}
	return moved
}

// reshuffleUntilPlayable shuffles until a valid move exists, bounded by
// MaxShuffleAttempts. With two tiles left the compaction makes them adjacent,
// so in normal play a single attempt suffices.
func (e *GameEngine) reshuffleUntilPlayable() bool {
	for i := 0; i < MaxShuffleAttempts; i++ {
		e.grid.ShuffleRemaining(e.rng)
		e.shuffles++
		if e.HasValidMoves() {
			e.message = e.config.Messages.Shuffled
			return true
		}
	}
	return false
}

func (e *GameEngine) highlight(p Point, on bool) {
	if e.renderer != nil {
		e.renderer.SetHighlight(p, on)
	}
}
