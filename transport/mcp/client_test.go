package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/pairlink/tile-link-game/game/engine"
	"github.com/pairlink/tile-link-game/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":        "test-session",
		"remaining": float64(42),
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_JSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found: zz99"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zz99", nil, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 404 response")
	}

	if !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected upstream error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "test-session-123",
			ConfigName: "classic",
			GameState: &engine.GameState{
				Rows:      4,
				Columns:   4,
				Remaining: 16,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "test-session-123") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_activateTile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/ab12/activate" {
			t.Errorf("Expected POST /api/sessions/ab12/activate, got %s %s", r.Method, r.URL.Path)
		}

		var req map[string]int
		json.NewDecoder(r.Body).Decode(&req)
		if req["row"] != 1 || req["col"] != 2 {
			t.Errorf("Expected row=1 col=2, got %v", req)
		}

		resp := service.ActivateResult{
			Outcome:   engine.OutcomeMatched,
			GameState: &engine.GameState{Rows: 4, Columns: 4, Remaining: 14},
			Removed:   []engine.Point{{Row: 1, Col: 2}, {Row: 1, Col: 3}},
			Path:      engine.Path{{Row: 1, Col: 2}, {Row: 1, Col: 3}},
			Kind:      engine.TileKind(3),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "activate_tile",
			Arguments: map[string]interface{}{
				"session_id": "ab12",
				"row":        float64(1),
				"col":        float64(2),
				"intent":     "clearing the adjacent pair first",
			},
		},
	}

	result, err := client.handleActivateTile(ctx, request)
	if err != nil {
		t.Fatalf("activateTile failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "Match!") {
		t.Errorf("Expected match confirmation in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "(1,2)") {
		t.Errorf("Expected removed cell coordinates in result, got: %s", resultStr.Text)
	}
}

func TestClient_hintNoPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.HintResult{Found: false})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "hint",
			Arguments: map[string]interface{}{"session_id": "ab12"},
		},
	}

	result, err := client.handleHint(context.Background(), request)
	if err != nil {
		t.Fatalf("hint failed: %v", err)
	}

	resultStr := result.Content[0].(mcp.TextContent)
	if !strings.Contains(resultStr.Text, "No connectable pair") {
		t.Errorf("Expected no-pair message, got: %s", resultStr.Text)
	}
}

func TestTileGlyph(t *testing.T) {
	tests := []struct {
		kind engine.TileKind
		want string
	}{
		{engine.Empty, "."},
		{engine.TileKind(1), "A"},
		{engine.TileKind(26), "Z"},
		{engine.TileKind(27), "a"},
		{engine.TileKind(64), "#"},
		{engine.TileKind(65), "?"},
	}

	for _, tt := range tests {
		if got := tileGlyph(tt.kind); got != tt.want {
			t.Errorf("tileGlyph(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFormatGameState(t *testing.T) {
	grid := [][]engine.Cell{
		{
			{Row: 0, Col: 0, Kind: 1},
			{Row: 0, Col: 1, Kind: 0},
		},
		{
			{Row: 1, Col: 0, Kind: 0},
			{Row: 1, Col: 1, Kind: 1},
		},
	}
	gameState := &engine.GameState{
		Grid:      grid,
		Rows:      2,
		Columns:   2,
		Remaining: 2,
		Armed:     &engine.Point{Row: 0, Col: 0},
		Message:   "Welcome to the board!",
	}

	result := formatGameState(gameState)

	expectedFields := []string{
		"Board: 2x2",
		"Remaining: 2",
		"Armed: (0,0) glyph=A",
		"A.",
		".A",
		"Welcome to the board!",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Complete(t *testing.T) {
	gameState := &engine.GameState{
		Rows:      2,
		Columns:   2,
		Remaining: 0,
		Complete:  true,
		Message:   "Board cleared!",
	}

	result := formatGameState(gameState)

	if !strings.Contains(result, "🎉 BOARD CLEARED!") {
		t.Errorf("Expected '🎉 BOARD CLEARED!' in result, got: %s", result)
	}
}

func TestFormatActivateResult_Rejected(t *testing.T) {
	result := formatActivateResult(&service.ActivateResult{
		Outcome:   engine.OutcomeRejected,
		GameState: &engine.GameState{Rows: 2, Columns: 2},
	})

	if !strings.Contains(result, "rejected") {
		t.Errorf("Expected rejection notice, got: %s", result)
	}
}

func TestFormatPath(t *testing.T) {
	path := engine.Path{{Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 3}}
	got := formatPath(path)
	want := "(0,0) -> (0,3) -> (2,3)"
	if got != want {
		t.Errorf("formatPath = %q, want %q", got, want)
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Tile Link Game - Complete Instructions",
		"GAME OBJECTIVE:",
		"GAME MECHANICS:",
		"GRID LEGEND:",
		"AI AGENTS - STRATEGY NOTES:",
		"ACTIVATION OUTCOMES:",
		"VICTORY CONDITION:",
		"SESSION MANAGEMENT:",
		"Good luck clearing the board!",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
