// Package engine provides the core game logic for the Tile Link Game.
//
// The engine package implements the game mechanics including:
//   - Grid generation with evenly paired tile kinds
//   - Path connectivity search with at most two bends
//   - The tile-selection state machine
//   - Match resolution, deadlock reshuffling, and completion detection
//   - Configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState is a serializable snapshot of the
// board, while GameConfig defines the board shape loaded from JSON files.
// Renderer and PathAnimator are narrow collaborator interfaces the host may
// register; the core never depends on any rendering API.
//
// Usage:
//
//	config, err := engine.LoadConfigFromFile("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Activate a tile
//	result := gameEngine.ActivateTile(2, 3)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Players select two tiles of the same kind; the pair is removed if a path
// of at most three straight segments connects them through Empty cells only.
// When no pair can connect, the remaining tiles are reshuffled into the
// grid's row-major prefix. The game completes when the board is empty.
package engine
