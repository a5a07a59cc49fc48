// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes board dimensions,
// tile distribution, and highlights configs whose kind counts leave some
// kinds unused or concentrate too many copies on a single kind.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	TileKinds   int               `json:"tile_kinds"`
	Seed        int64             `json:"seed"`
	Messages    map[string]string `json:"messages"`
}

func main() {
	configs := []string{
		"classic.json",
		"compact.json",
		"grande.json",
		"daily.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	cells := config.Rows * config.Columns
	pairs := cells / 2
	odd := cells%2 != 0

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d (%d cells)\n", config.Rows, config.Columns, cells)
	fmt.Printf("Tile Kinds: %d\n", config.TileKinds)
	fmt.Printf("Pairs Dealt: %d\n", pairs)
	if odd {
		fmt.Printf("Note: odd cell count, one cell stays empty\n")
	}
	if config.Seed != 0 {
		fmt.Printf("Seed: %d (fixed deal)\n", config.Seed)
	}

	if config.TileKinds <= 0 {
		fmt.Printf("⚠️  WARNING: tile_kinds must be positive\n")
		return
	}

	// Distribution: pairs are dealt round-robin across kinds
	basePairs := pairs / config.TileKinds
	extraKinds := pairs % config.TileKinds

	if pairs < config.TileKinds {
		unused := config.TileKinds - pairs
		fmt.Printf("⚠️  WARNING: only %d pairs for %d kinds; %d kinds never appear on the board\n",
			pairs, config.TileKinds, unused)
	} else if extraKinds == 0 {
		fmt.Printf("✅ Even distribution: every kind gets %d pairs (%d tiles)\n",
			basePairs, basePairs*2)
	} else {
		fmt.Printf("Distribution: %d kinds get %d pairs, %d kinds get %d pairs\n",
			extraKinds, basePairs+1, config.TileKinds-extraKinds, basePairs)
	}

	// Copies-per-kind is a rough difficulty signal: more copies of each
	// kind means more candidate matches at any moment.
	if pairs >= config.TileKinds {
		avgTilesPerKind := float64(pairs*2) / float64(config.TileKinds)
		fmt.Printf("Avg tiles per kind: %.1f\n", avgTilesPerKind)
		switch {
		case avgTilesPerKind >= 8:
			fmt.Printf("Difficulty: easy (many duplicates of each kind)\n")
		case avgTilesPerKind >= 4:
			fmt.Printf("Difficulty: medium\n")
		default:
			fmt.Printf("Difficulty: hard (few duplicates of each kind)\n")
		}
	}

	if matched, ok := config.Messages["matched"]; ok {
		if !containsVerb(matched) {
			fmt.Printf("⚠️  WARNING: matched message has no %%d verb; remaining count won't show\n")
		}
	}
}

// containsVerb reports whether s carries a %d format verb.
func containsVerb(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '%' && s[i+1] == 'd' {
			return true
		}
	}
	return false
}
