// Package config manages board configuration files for the Tile Link Game.
//
// Configurations are JSON files in a configs directory, each describing a
// board: dimensions, tile kind count, optional RNG seed, and messages. The
// Manager caches parsed configs, exposes a default board (classic.json when
// present, the engine's built-in board otherwise), and can persist new
// configurations back to disk.
package config
