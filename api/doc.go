// Package api provides the HTTP REST surface of the tile link game.
//
// The api package implements:
//   - RESTful endpoints for board operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional {"config_id": "..."})
//   - GET /api/sessions - List sessions (sort/order/limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current board snapshot
//   - POST /api/sessions/{id}/activate - Activate a cell {"row": r, "col": c}
//   - POST /api/sessions/{id}/shuffle - Redistribute surviving tiles
//   - POST /api/sessions/{id}/restart - Deal a fresh board for the session
//   - GET /api/sessions/{id}/hint - First connectable pair, if any
//   - GET /api/sessions/{id}/history - Paginated match history
//
// Configuration:
//   - GET /api/configs - List available board configurations
//   - POST /api/configs - Save a new board configuration
//   - GET /api/configs/{name} - Get a configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. An activation response carries the
// outcome (ignored, armed, switched, matched, rejected), the removed cells
// and connecting path on a match, any auto-shuffle that followed, and the
// resulting board snapshot. Errors are returned as JSON:
//
//	{
//	  "error": "error message"
//	}
//
// WebSocket clients connect at /ws?session={id} and receive state_update
// messages plus the individual gameplay events after each activation.
package api
