// Package mcp provides the Model Context Protocol surface of the tile link game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for board operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current board state with grid visualization
//   - activate_tile: Arm a tile or match it against the armed one
//   - hint: Find the first connectable pair on the board
//   - shuffle_tiles: Redistribute the surviving tiles
//   - restart_game: Deal a fresh board for the session
//   - match_history: Retrieve match history with pagination
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available board configurations
//   - game_instructions: Comprehensive rules and strategy notes
//   - describe_cell: Detailed info about a single grid cell
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// The client is deliberately stateless: every tool call proxies to the REST
// API, so MCP agents, HTTP clients and WebSocket viewers all observe the
// same sessions.
package mcp
