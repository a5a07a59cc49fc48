package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cellSize          = 48
	headerHeight      = 70
	screenWidth       = 800
	screenHeight      = 720
	baseURL           = "http://localhost:8080"
	matchFlashTime    = 450 * time.Millisecond  // How long the link path stays visible
	hintFlashTime     = 1500 * time.Millisecond // How long a hinted pair stays highlighted
	mismatchFlashTime = 300 * time.Millisecond  // Red flash on a failed pair
)

// ScreenType represents different screens in the app
type ScreenType int

const (
	ScreenWelcome ScreenType = iota
	ScreenGame
)

// Tile face colors, cycled by kind
var kindColors = []color.RGBA{
	{205, 92, 92, 255},   // Indian red
	{70, 130, 180, 255},  // Steel blue
	{60, 179, 113, 255},  // Medium sea green
	{218, 165, 32, 255},  // Goldenrod
	{147, 112, 219, 255}, // Medium purple
	{0, 139, 139, 255},   // Dark cyan
	{210, 105, 30, 255},  // Chocolate
	{188, 143, 143, 255}, // Rosy brown
	{106, 90, 205, 255},  // Slate blue
	{85, 107, 47, 255},   // Dark olive green
	{178, 34, 34, 255},   // Firebrick
	{95, 158, 160, 255},  // Cadet blue
}

// Single-character faces for tile kinds, matching the server's text rendering
const tileGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#"

// Cell represents one grid cell from the server
type Cell struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Kind int `json:"kind"`
}

// Point is a board coordinate
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GameState represents the state from the tile-link server
type GameState struct {
	Grid       [][]Cell `json:"grid"`
	Rows       int      `json:"rows"`
	Columns    int      `json:"columns"`
	TileKinds  int      `json:"tile_kinds"`
	Remaining  int      `json:"remaining"`
	Complete   bool     `json:"complete"`
	Armed      *Point   `json:"armed,omitempty"`
	Resolving  bool     `json:"resolving,omitempty"`
	Message    string   `json:"message,omitempty"`
	ConfigName string   `json:"config_name"`
	Shuffles   int      `json:"shuffles_this_game"`
}

// ActivateResponse is what POST /activate returns
type ActivateResponse struct {
	Outcome   string     `json:"outcome"`
	Removed   []Point    `json:"removed,omitempty"`
	Path      []Point    `json:"path,omitempty"`
	Shuffled  bool       `json:"shuffled,omitempty"`
	Complete  bool       `json:"complete,omitempty"`
	Message   string     `json:"message,omitempty"`
	GameState *GameState `json:"game_state"`
}

// HintResponse is what GET /hint returns
type HintResponse struct {
	Found bool    `json:"found"`
	A     Point   `json:"a"`
	B     Point   `json:"b"`
	Path  []Point `json:"path,omitempty"`
}

// WSMessage represents WebSocket message wrapper
type WSMessage struct {
	SessionID string     `json:"session_id"`
	GameState *GameState `json:"game_state,omitempty"`
	Event     string     `json:"event,omitempty"`
}

// SessionData holds data for the connected session
type SessionData struct {
	sessionID  string
	state      *GameState
	wsConn     *websocket.Conn
	lastUpdate time.Time

	matchPath    []Point      // Link path of the last match, drawn briefly
	matchTween   *gween.Tween // Fades the link path out
	matchAlpha   uint8
	hintA, hintB *Point // Hinted pair, highlighted briefly
	hintPath     []Point
	hintTime     time.Time
	mismatchAt   *Point // Cell of a failed second pick
	mismatchTime time.Time
}

// SessionListItem represents a session from the server
type SessionListItem struct {
	ID         string `json:"id"`
	ConfigName string `json:"config_name"`
	CreatedAt  string `json:"created_at"`
}

// ConfigListItem represents a board configuration
type ConfigListItem struct {
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Columns     int    `json:"columns"`
}

// Game represents the desktop game client
type Game struct {
	session       *SessionData
	stateMutex    sync.RWMutex
	currentScreen ScreenType
	welcomeScreen *WelcomeScreen
}

// WelcomeScreen manages the welcome screen state
type WelcomeScreen struct {
	availableSessions []SessionListItem
	availableConfigs  []ConfigListItem
	cursorPos         int
	loading           bool
	errorMsg          string
	newSessionConfig  string // selected config for new session
}

// NewGame creates a new game instance, optionally joining an existing session
func NewGame(sessionID string) *Game {
	g := &Game{
		currentScreen: ScreenWelcome,
		welcomeScreen: &WelcomeScreen{
			availableSessions: make([]SessionListItem, 0),
			availableConfigs:  make([]ConfigListItem, 0),
		},
	}

	// If a session ID was provided, skip the welcome screen and go straight to the board
	if sessionID != "" {
		g.joinSession(sessionID)
		g.currentScreen = ScreenGame
	} else {
		g.loadWelcomeData()
	}

	return g
}

// joinSession attaches to a session and starts receiving updates
func (g *Game) joinSession(sessionID string) {
	session := &SessionData{
		sessionID:  sessionID,
		lastUpdate: time.Now(),
	}
	g.session = session

	if err := g.connectWebSocket(session); err != nil {
		log.Printf("Failed to connect WebSocket for %s: %v (falling back to polling)", sessionID, err)
	} else {
		go g.listenWebSocket(session)
	}

	g.fetchGameState(session)
}

// createSession creates a new game session with the given config
func (g *Game) createSession(configID string) (string, error) {
	url := fmt.Sprintf("%s/api/sessions", baseURL)

	payload := "{}"
	if configID != "" {
		payload = fmt.Sprintf(`{"config_id":"%s"}`, configID)
	}

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse session response: %v (body: %s)", err, string(body))
	}
	if result.ID == "" {
		return "", fmt.Errorf("server returned no session id (body: %s)", string(body))
	}

	log.Printf("Created new session: %s (config: %s)", result.ID, configID)
	return result.ID, nil
}

// connectWebSocket establishes WebSocket connection
func (g *Game) connectWebSocket(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	wsURL := url.URL{Scheme: "ws", Host: "localhost:8080", Path: "/ws"}
	q := wsURL.Query()
	q.Set("session", session.sessionID)
	wsURL.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL.String(), nil)
	if err != nil {
		return err
	}

	session.wsConn = conn
	log.Printf("WebSocket connected for session %s", session.sessionID)
	return nil
}

// listenWebSocket listens for WebSocket updates
func (g *Game) listenWebSocket(session *SessionData) {
	defer func() {
		if session.wsConn != nil {
			session.wsConn.Close()
		}
	}()

	for {
		_, message, err := session.wsConn.ReadMessage()
		if err != nil {
			log.Printf("WebSocket read error for %s: %v", session.sessionID, err)
			return
		}

		var wsMsg WSMessage
		if err := json.Unmarshal(message, &wsMsg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}

		if wsMsg.GameState == nil {
			// Event-only frames (shuffle, complete, ...) carry no board snapshot
			continue
		}

		g.stateMutex.Lock()
		session.state = wsMsg.GameState
		session.lastUpdate = time.Now()
		g.stateMutex.Unlock()
	}
}

// fetchGameState gets the current game state from the server
func (g *Game) fetchGameState(session *SessionData) error {
	if session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/state", baseURL, session.sessionID)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var state GameState
	if err := json.Unmarshal(body, &state); err != nil {
		return fmt.Errorf("failed to parse JSON: %v (body: %s)", err, string(body))
	}

	g.stateMutex.Lock()
	session.state = &state
	session.lastUpdate = time.Now()
	g.stateMutex.Unlock()

	return nil
}

// loadWelcomeData fetches available sessions and configs from server
func (g *Game) loadWelcomeData() {
	g.welcomeScreen.loading = true
	g.welcomeScreen.errorMsg = ""

	resp, err := http.Get(fmt.Sprintf("%s/api/sessions", baseURL))
	if err != nil {
		g.welcomeScreen.errorMsg = fmt.Sprintf("Error loading sessions: %v", err)
		g.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var sessionsResp struct {
		Sessions []SessionListItem `json:"sessions"`
	}
	if err := json.Unmarshal(body, &sessionsResp); err == nil {
		g.welcomeScreen.availableSessions = sessionsResp.Sessions
	}

	resp, err = http.Get(fmt.Sprintf("%s/api/configs", baseURL))
	if err != nil {
		g.welcomeScreen.errorMsg = fmt.Sprintf("Error loading configs: %v", err)
		g.welcomeScreen.loading = false
		return
	}
	defer resp.Body.Close()

	// Configs come back as a bare array
	body, _ = io.ReadAll(resp.Body)
	var configs []ConfigListItem
	if err := json.Unmarshal(body, &configs); err == nil {
		g.welcomeScreen.availableConfigs = configs
	}

	g.welcomeScreen.loading = false
}

// activateTile sends a tile activation for the clicked cell
func (g *Game) activateTile(row, col int) error {
	session := g.session
	if session == nil || session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/activate", baseURL, session.sessionID)
	payload := fmt.Sprintf(`{"row":%d,"col":%d}`, row, col)

	resp, err := http.Post(url, "application/json", strings.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result ActivateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse activate response: %v (body: %s)", err, string(body))
	}

	g.stateMutex.Lock()
	defer g.stateMutex.Unlock()

	switch result.Outcome {
	case "matched":
		session.matchPath = result.Path
		session.matchTween = gween.New(220, 0, float32(matchFlashTime.Seconds()), ease.OutQuad)
		session.matchAlpha = 220
		session.hintA, session.hintB = nil, nil
	case "switched":
		// Second pick that did not link: flash the clicked cell red
		if result.Message != "" {
			session.mismatchAt = &Point{Row: row, Col: col}
			session.mismatchTime = time.Now()
		}
	}

	if result.GameState != nil {
		session.state = result.GameState
		session.lastUpdate = time.Now()
	}
	return nil
}

// requestHint asks the server for a linkable pair and highlights it
func (g *Game) requestHint() error {
	session := g.session
	if session == nil || session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/hint", baseURL, session.sessionID)
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var hint HintResponse
	if err := json.Unmarshal(body, &hint); err != nil {
		return fmt.Errorf("failed to parse hint response: %v", err)
	}

	g.stateMutex.Lock()
	defer g.stateMutex.Unlock()
	if hint.Found {
		a, b := hint.A, hint.B
		session.hintA, session.hintB = &a, &b
		session.hintPath = hint.Path
		session.hintTime = time.Now()
	}
	return nil
}

// sendSimpleAction posts to an argument-less session endpoint (shuffle, restart)
func (g *Game) sendSimpleAction(action string) error {
	session := g.session
	if session == nil || session.sessionID == "" {
		return fmt.Errorf("no session ID set")
	}

	url := fmt.Sprintf("%s/api/sessions/%s/%s", baseURL, session.sessionID, action)
	resp, err := http.Post(url, "application/json", strings.NewReader("{}"))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return g.fetchGameState(session)
}

// Update updates game logic
func (g *Game) Update() error {
	switch g.currentScreen {
	case ScreenWelcome:
		return g.updateWelcomeScreen()
	case ScreenGame:
		return g.updateGameScreen()
	}
	return nil
}

// updateWelcomeScreen handles welcome screen input
func (g *Game) updateWelcomeScreen() error {
	ws := g.welcomeScreen

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.loadWelcomeData()
	}

	totalItems := len(ws.availableSessions)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ws.cursorPos++
		if ws.cursorPos >= totalItems {
			ws.cursorPos = totalItems - 1
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ws.cursorPos--
		if ws.cursorPos < 0 {
			ws.cursorPos = 0
		}
	}

	// Cycle through configs with Tab
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if len(ws.availableConfigs) > 0 {
			currentIdx := -1
			for i, cfg := range ws.availableConfigs {
				if cfg.ConfigID == ws.newSessionConfig {
					currentIdx = i
					break
				}
			}
			currentIdx++
			if currentIdx >= len(ws.availableConfigs) {
				ws.newSessionConfig = "" // server default
			} else {
				ws.newSessionConfig = ws.availableConfigs[currentIdx].ConfigID
			}
		}
	}

	// Create and join a fresh session with N
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		id, err := g.createSession(ws.newSessionConfig)
		if err != nil {
			ws.errorMsg = fmt.Sprintf("Failed to create session: %v", err)
			return nil
		}
		g.joinSession(id)
		g.currentScreen = ScreenGame
	}

	// Join the session under the cursor with Enter
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if ws.cursorPos < len(ws.availableSessions) {
			g.joinSession(ws.availableSessions[ws.cursorPos].ID)
			g.currentScreen = ScreenGame
		} else {
			ws.errorMsg = "No session selected. Press N to create one."
		}
	}

	// Back to game screen with Escape (if a session is attached)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.session != nil {
		g.currentScreen = ScreenGame
	}

	return nil
}

// updateGameScreen handles game screen input
func (g *Game) updateGameScreen() error {
	session := g.session
	if session == nil {
		return nil
	}

	// Poll if WebSocket is not connected
	if session.wsConn == nil {
		if session.state == nil || time.Since(session.lastUpdate) > 500*time.Millisecond {
			if err := g.fetchGameState(session); err != nil {
				log.Printf("Error fetching state for %s: %v", session.sessionID, err)
			}
		}
	}

	// Advance the path fade and expire transient highlights
	g.stateMutex.Lock()
	if session.matchTween != nil {
		alpha, finished := session.matchTween.Update(1.0 / float32(ebiten.TPS()))
		session.matchAlpha = uint8(alpha)
		if finished {
			session.matchPath = nil
			session.matchTween = nil
		}
	}
	if session.hintA != nil && time.Since(session.hintTime) > hintFlashTime {
		session.hintA, session.hintB, session.hintPath = nil, nil, nil
	}
	if session.mismatchAt != nil && time.Since(session.mismatchTime) > mismatchFlashTime {
		session.mismatchAt = nil
	}
	g.stateMutex.Unlock()

	// Click to activate a tile
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cellAtCursor(); ok {
			if err := g.activateTile(row, col); err != nil {
				log.Printf("Error activating (%d,%d): %v", row, col, err)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		if err := g.requestHint(); err != nil {
			log.Printf("Error requesting hint: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.sendSimpleAction("shuffle"); err != nil {
			log.Printf("Error shuffling: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sendSimpleAction("restart"); err != nil {
			log.Printf("Error restarting: %v", err)
		}
	}

	// Return to welcome screen with Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.currentScreen = ScreenWelcome
		g.loadWelcomeData()
	}

	return nil
}

// cellAtCursor maps the mouse position to a board cell
func (g *Game) cellAtCursor() (row, col int, ok bool) {
	g.stateMutex.RLock()
	defer g.stateMutex.RUnlock()

	state := g.session.state
	if state == nil {
		return 0, 0, false
	}

	x, y := ebiten.CursorPosition()
	offX, offY := gridOffset(state)

	col = (x - offX) / cellSize
	row = (y - offY) / cellSize
	if x < offX || y < offY || row < 0 || col < 0 || row >= state.Rows || col >= state.Columns {
		return 0, 0, false
	}
	return row, col, true
}

// gridOffset centers the board below the header
func gridOffset(state *GameState) (int, int) {
	offX := (screenWidth - state.Columns*cellSize) / 2
	if offX < 0 {
		offX = 0
	}
	return offX, headerHeight
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.currentScreen {
	case ScreenWelcome:
		g.drawWelcomeScreen(screen)
	case ScreenGame:
		g.drawGameScreen(screen)
	}
}

// drawWelcomeScreen renders the welcome/session selection screen
func (g *Game) drawWelcomeScreen(screen *ebiten.Image) {
	ws := g.welcomeScreen

	screen.Fill(color.RGBA{20, 20, 30, 255})

	y := 20
	ebitenutil.DebugPrintAt(screen, "=== TILE LINK - SESSION SELECT ===", 260, y)
	y += 30

	if ws.loading {
		ebitenutil.DebugPrintAt(screen, "Loading sessions...", 20, y)
		return
	}

	if ws.errorMsg != "" {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ERROR: %s", ws.errorMsg), 20, y)
		y += 20
	}

	ebitenutil.DebugPrintAt(screen, "Available Sessions:", 20, y)
	y += 20

	if len(ws.availableSessions) == 0 {
		ebitenutil.DebugPrintAt(screen, "  No sessions found. Press N to create one.", 20, y)
		y += 20
	} else {
		for i, session := range ws.availableSessions {
			cursor := "  "
			if i == ws.cursorPos {
				cursor = "> "
			}

			line := fmt.Sprintf("%s%s | %s | created %s",
				cursor, session.ID, session.ConfigName, session.CreatedAt)

			ebitenutil.DebugPrintAt(screen, line, 20, y)
			y += 15
		}
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	ebitenutil.DebugPrintAt(screen, "Create New Session:", 20, y)
	y += 20

	configDisplay := "default"
	if ws.newSessionConfig != "" {
		configDisplay = ws.newSessionConfig
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("  Selected Config: %s", configDisplay), 20, y)
	y += 15

	ebitenutil.DebugPrintAt(screen, "  Available Configs:", 20, y)
	y += 15
	for _, cfg := range ws.availableConfigs {
		marker := "  "
		if cfg.ConfigID == ws.newSessionConfig {
			marker = "→ "
		}
		line := fmt.Sprintf("    %s%s (%dx%d) - %s", marker, cfg.ConfigID, cfg.Rows, cfg.Columns, cfg.Description)
		ebitenutil.DebugPrintAt(screen, line, 20, y)
		y += 15
	}

	y += 20
	ebitenutil.DebugPrintAt(screen, "─────────────────────────────────────────", 20, y)
	y += 20

	ebitenutil.DebugPrintAt(screen, "CONTROLS:", 20, y)
	y += 20
	ebitenutil.DebugPrintAt(screen, "  ↑/↓      - Navigate sessions", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  ENTER    - Join the highlighted session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  TAB      - Cycle config for new session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  N        - Create and join a new session", 20, y)
	y += 15
	ebitenutil.DebugPrintAt(screen, "  F5       - Refresh session list", 20, y)
	y += 15
	if g.session != nil {
		ebitenutil.DebugPrintAt(screen, "  ESC      - Back to board", 20, y)
	}
}

// drawGameScreen renders the board
func (g *Game) drawGameScreen(screen *ebiten.Image) {
	g.stateMutex.RLock()
	defer g.stateMutex.RUnlock()

	screen.Fill(color.RGBA{25, 28, 35, 255})

	session := g.session
	if session == nil {
		ebitenutil.DebugPrint(screen, "No session attached. Press ESC for session select.")
		return
	}
	state := session.state
	if state == nil {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}

	g.drawHeader(screen, session, state)

	offX, offY := gridOffset(state)

	// Tiles
	for _, row := range state.Grid {
		for _, cell := range row {
			x := float64(offX + cell.Col*cellSize)
			y := float64(offY + cell.Row*cellSize)

			if cell.Kind == 0 {
				ebitenutil.DrawRect(screen, x, y, cellSize-2, cellSize-2, color.RGBA{38, 42, 52, 255})
				continue
			}

			face := kindColors[(cell.Kind-1)%len(kindColors)]
			ebitenutil.DrawRect(screen, x, y, cellSize-2, cellSize-2, face)
			ebitenutil.DebugPrintAt(screen, tileGlyph(cell.Kind), int(x)+cellSize/2-3, int(y)+cellSize/2-8)
		}
	}

	// Armed tile gets a white frame
	if state.Armed != nil {
		drawCellFrame(screen, offX, offY, *state.Armed, color.RGBA{255, 255, 255, 255})
	}

	// Hinted pair in yellow, with its link path
	if session.hintA != nil && session.hintB != nil {
		drawCellFrame(screen, offX, offY, *session.hintA, color.RGBA{255, 220, 0, 255})
		drawCellFrame(screen, offX, offY, *session.hintB, color.RGBA{255, 220, 0, 255})
		drawLinkPath(screen, offX, offY, session.hintPath, color.RGBA{255, 220, 0, 160})
	}

	// Flash the link path of the last match, fading out
	if session.matchPath != nil {
		drawLinkPath(screen, offX, offY, session.matchPath, color.RGBA{120, 255, 120, session.matchAlpha})
	}

	// Red flash on a failed pair
	if session.mismatchAt != nil {
		drawCellFrame(screen, offX, offY, *session.mismatchAt, color.RGBA{255, 60, 60, 255})
	}

	if state.Complete {
		ebitenutil.DebugPrintAt(screen, "*** BOARD CLEARED! Press R to play again ***", screenWidth/2-160, offY+state.Rows*cellSize+20)
	}

	ebitenutil.DebugPrintAt(screen, "Click: Select/Link | H: Hint | S: Shuffle | R: Restart | ESC: Menu", 10, screenHeight-20)
}

// drawHeader draws session stats above the board
func (g *Game) drawHeader(screen *ebiten.Image, session *SessionData, state *GameState) {
	connStatus := "POLL"
	if session.wsConn != nil {
		connStatus = "WS"
	}

	info := fmt.Sprintf("%s [%s] %s | Tiles left: %d | Shuffles: %d",
		session.sessionID, connStatus, state.ConfigName, state.Remaining, state.Shuffles)
	ebitenutil.DebugPrintAt(screen, info, 10, 10)

	if state.Message != "" {
		ebitenutil.DebugPrintAt(screen, state.Message, 10, 30)
	}
	if state.Resolving {
		ebitenutil.DebugPrintAt(screen, "(resolving...)", 10, 45)
	}
}

// drawCellFrame outlines a single cell
func drawCellFrame(screen *ebiten.Image, offX, offY int, p Point, clr color.RGBA) {
	x := float64(offX + p.Col*cellSize)
	y := float64(offY + p.Row*cellSize)
	w := float64(cellSize - 2)
	ebitenutil.DrawRect(screen, x, y, w, 3, clr)
	ebitenutil.DrawRect(screen, x, y+w-3, w, 3, clr)
	ebitenutil.DrawRect(screen, x, y, 3, w, clr)
	ebitenutil.DrawRect(screen, x+w-3, y, 3, w, clr)
}

// drawLinkPath draws dots along each straight segment of a link path
func drawLinkPath(screen *ebiten.Image, offX, offY int, path []Point, clr color.RGBA) {
	const dotSize = 8.0
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]

		dr, dc := 0, 0
		if b.Row > a.Row {
			dr = 1
		} else if b.Row < a.Row {
			dr = -1
		}
		if b.Col > a.Col {
			dc = 1
		} else if b.Col < a.Col {
			dc = -1
		}

		for p := a; ; p.Row, p.Col = p.Row+dr, p.Col+dc {
			cx := float64(offX+p.Col*cellSize) + float64(cellSize)/2 - dotSize/2
			cy := float64(offY+p.Row*cellSize) + float64(cellSize)/2 - dotSize/2
			ebitenutil.DrawRect(screen, cx, cy, dotSize, dotSize, clr)
			if p == b {
				break
			}
		}
	}
}

// tileGlyph returns the single-character face for a tile kind
func tileGlyph(kind int) string {
	if kind < 1 || kind > len(tileGlyphs) {
		return "?"
	}
	return string(tileGlyphs[kind-1])
}

// Layout returns the game screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	sessionID := ""
	if len(os.Args) > 1 {
		sessionID = os.Args[1]
	}

	game := NewGame(sessionID)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Tile Link - Desktop Client")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
