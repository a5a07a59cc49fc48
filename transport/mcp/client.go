package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pairlink/tile-link-game/game/engine"
	"github.com/pairlink/tile-link-game/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Tile Link Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Tile Link Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Clear the board by removing tiles two at a time. Two tiles can be removed
together when they show the same symbol and a clear orthogonal path with at
most two turns connects them through empty cells.

AVAILABLE TOOLS:
- game_state: Get current board state with grid visualization
- activate_tile: Click a cell (arm it, or match it against the armed cell) - requires intent explanation
- hint: Find the first connectable pair on the board
- shuffle_tiles: Redistribute the surviving tiles
- restart_game: Deal a fresh board for the session
- match_history: View past matches
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available board configurations
- game_instructions: Get comprehensive game instructions and rules
- describe_cell: Get detailed info about a specific grid cell

NOTE: The 'intent' parameter on activate_tile serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional board config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the board config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "activate_tile",
		Description: "Activate a cell. The first activation arms a tile; activating a second tile of the same kind removes both when a path with at most two turns connects them.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to activate (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to activate (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this activation (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleActivateTile)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "hint",
		Description: "Find the first connectable pair on the board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHint)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "shuffle_tiles",
		Description: "Redistribute the surviving tiles into the row-major prefix of the board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleShuffle)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart_game",
		Description: "Deal a fresh board for the session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRestart)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "match_history",
		Description: "Get match history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMatchHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific cell, including its tile kind and whether it can currently pair with the armed tile.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to describe (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleActivateTile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := intArg(args, "row")
	col := intArg(args, "col")
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"row": row,
		"col": col,
	}

	var result service.ActivateResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/activate", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActivateResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var hint service.HintResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/hint", sessionID), nil, &hint)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !hint.Found {
		return mcp.NewToolResultText("No connectable pair exists on the board. Use shuffle_tiles to redistribute the tiles."), nil
	}

	result := fmt.Sprintf("Connectable pair found:\nA: (%d,%d)\nB: (%d,%d)\nKind: %s\nPath: %s",
		hint.A.Row, hint.A.Col, hint.B.Row, hint.B.Col,
		tileGlyph(hint.Kind), formatPath(hint.Path))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleShuffle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.ShuffleResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/shuffle", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	playable := "yes"
	if !result.HasValidMoves {
		playable = "no"
	}
	response := fmt.Sprintf("Redistributed %d tiles. Playable: %s\n\n%s",
		result.Redistributed, playable, formatGameState(result.GameState))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/restart", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMatchHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Board: %dx%d, Kinds: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Rows, config.Columns, config.TileKinds)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🀄 Tile Link Game - Complete Instructions

GAME OBJECTIVE:
Clear the board by removing every tile, two at a time.

GAME MECHANICS:
• Arm: Activate any tile to arm it (first click)
• Match: Activate a second tile of the SAME kind; both are removed when a
  connecting path exists
• Path rule: The path runs through EMPTY cells only, moves orthogonally,
  and may turn at most TWICE (0, 1 or 2 bends)
• Switch: Activating a different tile while armed moves the selection there
• Disarm: Activating the armed tile again keeps it armed (it switches onto
  itself); activating an empty cell while idle is ignored
• Shuffle: When no connectable pair remains, the surviving tiles are
  automatically redistributed into the top-left prefix of the board

GRID LEGEND:
• Letters/digits - Tile kinds (two or more tiles share each letter)
• . - Empty cell (tiles travel through these)

🤖 AI AGENTS - STRATEGY NOTES:

1. **Use the hint tool** when unsure: it returns the first connectable
   pair in reading order, with the exact path.
2. **Edges first**: Tiles on the outer border have more open space around
   them and connect more easily early on.
3. **Direct lines are cheapest**: Same row or column with nothing between
   needs zero bends. Adjacent tiles always connect.
4. **Watch the armed marker**: The state shows which cell is armed. An
   activation of a mismatched or unreachable tile SWITCHES the selection,
   it does not fail the game.
5. **Empty cells matter**: Every removal opens new paths. A pair that
   cannot connect now may connect after other removals nearby.
6. **Shuffles are not free progress**: A shuffle keeps the same tiles, so
   plan matches rather than hoping for better layouts.

ACTIVATION OUTCOMES:
- ignored: Empty cell or out-of-range activation while idle
- armed: First tile selected
- switched: Selection moved to a different tile (no match)
- matched: Pair removed, path returned in the response
- rejected: Activation arrived while a previous match was still resolving

VICTORY CONDITION:
- Remove all tiles. The final response carries complete=true.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration

Good luck clearing the board! 🀄`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := intArg(args, "row")
	col := intArg(args, "col")

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if row < 0 || row >= state.Rows || col < 0 || col >= state.Columns {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Cell (%d, %d) is out of bounds. Board is %dx%d (rows 0-%d, cols 0-%d)",
			row, col, state.Rows, state.Columns, state.Rows-1, state.Columns-1)), nil
	}

	cell := state.Grid[row][col]

	var cellType, description string
	switch {
	case cell.Kind == engine.Empty:
		cellType = "Empty"
		description = "Empty cell - connecting paths travel through cells like this"
	case state.Armed != nil && state.Armed.Row == row && state.Armed.Col == col:
		cellType = fmt.Sprintf("Tile (kind %d, ARMED)", cell.Kind)
		description = "This tile is currently armed; activate a matching tile to remove both"
	default:
		cellType = fmt.Sprintf("Tile (kind %d)", cell.Kind)
		description = "Activate this tile to arm it or match it against the armed tile"
	}

	armedNote := ""
	if state.Armed != nil && cell.Kind != engine.Empty {
		armed := state.Grid[state.Armed.Row][state.Armed.Col]
		if armed.Kind == cell.Kind && !(state.Armed.Row == row && state.Armed.Col == col) {
			armedNote = "\nThis tile has the SAME kind as the armed tile - activating it attempts a match."
		} else if armed.Kind != cell.Kind {
			armedNote = "\nThis tile does NOT match the armed tile - activating it switches the selection."
		}
	}

	result := fmt.Sprintf(`Cell at (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
Glyph: %s
Type: %s
Description: %s%s`,
		row, col, tileGlyph(cell.Kind), cellType, description, armedNote)

	return mcp.NewToolResultText(result), nil
}

// intArg reads an integer tool argument; JSON numbers decode as float64.
func intArg(args map[string]interface{}, key string) int {
	if f, ok := args[key].(float64); ok {
		return int(f)
	}
	return 0
}

// Formatting helpers

// tileGlyphs maps kinds 1..64 onto single display characters.
const tileGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789@#"

func tileGlyph(kind engine.TileKind) string {
	if kind == engine.Empty {
		return "."
	}
	idx := int(kind) - 1
	if idx < 0 || idx >= len(tileGlyphs) {
		return "?"
	}
	return string(tileGlyphs[idx])
}

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header
	result.WriteString(fmt.Sprintf("Board: %dx%d | Remaining: %d | Matches: %d | Shuffles: %d\n",
		state.Rows, state.Columns, state.Remaining, state.CurrentMatchCount, state.ShufflesThisGame))

	if state.Armed != nil {
		armedKind := engine.Empty
		if state.Armed.Row < len(state.Grid) && state.Armed.Col < len(state.Grid[state.Armed.Row]) {
			armedKind = state.Grid[state.Armed.Row][state.Armed.Col].Kind
		}
		result.WriteString(fmt.Sprintf("Armed: (%d,%d) glyph=%s\n",
			state.Armed.Row, state.Armed.Col, tileGlyph(armedKind)))
	}
	if state.Resolving {
		result.WriteString("Resolving: a match animation is in flight; activations are rejected until it lands\n")
	}
	result.WriteString("\n")

	// Grid
	for r := 0; r < state.Rows && r < len(state.Grid); r++ {
		for c := 0; c < state.Columns && c < len(state.Grid[r]); c++ {
			result.WriteString(tileGlyph(state.Grid[r][c].Kind))
		}
		result.WriteString("\n")
	}

	// Status
	if state.Complete {
		result.WriteString("\n🎉 BOARD CLEARED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatActivateResult(result *service.ActivateResult) string {
	var b strings.Builder

	switch result.Outcome {
	case engine.OutcomeMatched:
		b.WriteString("✓ Match!\n")
		if len(result.Removed) == 2 {
			b.WriteString(fmt.Sprintf("Removed: (%d,%d) and (%d,%d) glyph=%s\n",
				result.Removed[0].Row, result.Removed[0].Col,
				result.Removed[1].Row, result.Removed[1].Col,
				tileGlyph(result.Kind)))
		}
		if len(result.Path) > 0 {
			b.WriteString(fmt.Sprintf("Path: %s (%d bends)\n", formatPath(result.Path), result.Path.Bends()))
		}
	case engine.OutcomeArmed:
		b.WriteString("Tile armed\n")
	case engine.OutcomeSwitched:
		b.WriteString("Selection switched\n")
	case engine.OutcomeRejected:
		b.WriteString("✗ Activation rejected (previous match still resolving)\n")
	default:
		b.WriteString("Activation ignored\n")
	}

	if result.Shuffled {
		b.WriteString("Board deadlocked after the removal; tiles were redistributed automatically.\n")
	}
	if result.Complete {
		b.WriteString("All tiles removed!\n")
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatPath(path engine.Path) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.Row, p.Col))
	}
	return strings.Join(parts, " -> ")
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Match History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMatches)

	for i, match := range history.Matches {
		num := (history.Page-1)*history.PageSize + i + 1
		result += fmt.Sprintf("%d. %s (%d,%d)+(%d,%d) [%d bends]\n",
			num, tileGlyph(match.Kind),
			match.A.Row, match.A.Col, match.B.Row, match.B.Col, match.Bends)
	}

	if len(history.Matches) == 0 {
		result += "(no matches yet)\n"
	}

	return result
}
