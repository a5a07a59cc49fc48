// Package session manages in-memory game sessions for the Tile Link Game.
//
// Each session binds a generated 4-character ID to a game engine and its
// configuration. Lookups are case-insensitive. Sessions that go unused past
// a retention window can be pruned with CleanupExpiredSessions. Sessions are
// deliberately not persisted; a game lives and dies with the process.
package session
