// Package service defines the game service layer for the Tile Link Game.
//
// GameService is the single entry point transports talk to: it resolves
// session IDs, forwards tile activations, shuffles, restarts, and hints to
// the session's engine, and enriches engine outcomes with gameplay events
// suitable for broadcasting to UI collaborators. SessionManager and
// ConfigManager are the narrow storage interfaces the service depends on.
package service
