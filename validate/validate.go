// Command validate provides a small CLI that validates board configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Dimension limits and tile kind range
//   - Tile distribution: every kind should receive at least one pair
//   - Required message keys and the %d verb in the matched message
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dimension and kind limits mirrored from the engine.
const (
	minDim   = 1
	maxDim   = 50
	minKinds = 1
	maxKinds = 64
	minCells = 2
)

// Config mirrors the JSON schema for a board configuration.
type Config struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Rows        int               `json:"rows"`
	Columns     int               `json:"columns"`
	TileKinds   int               `json:"tile_kinds"`
	Seed        int64             `json:"seed"`
	Messages    map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Config name is required")
	}

	// Validate dimensions
	if config.Rows < minDim || config.Rows > maxDim {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("rows must be between %d and %d, got %d", minDim, maxDim, config.Rows))
	}
	if config.Columns < minDim || config.Columns > maxDim {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("columns must be between %d and %d, got %d", minDim, maxDim, config.Columns))
	}

	cells := config.Rows * config.Columns
	if config.Rows >= minDim && config.Columns >= minDim && cells < minCells {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("board must hold at least one pair, got %d cells", cells))
	}

	// Validate tile kinds
	if config.TileKinds < minKinds || config.TileKinds > maxKinds {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("tile_kinds must be between %d and %d, got %d", minKinds, maxKinds, config.TileKinds))
	}

	// Distribution check: a kind that gets no pair never appears on the board
	pairs := cells / 2
	if result.Valid && pairs < config.TileKinds {
		result.Errors = append(result.Errors, fmt.Sprintf("Note: %d kinds but only %d pairs; %d kinds will never appear", config.TileKinds, pairs, config.TileKinds-pairs))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"matched",
		"mismatch",
		"shuffled",
		"deadlock",
		"complete",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	if matched, exists := config.Messages["matched"]; exists && !strings.Contains(matched, "%d") {
		result.Valid = false
		result.Errors = append(result.Errors, "matched message must contain a %d verb for the remaining count")
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d (%d cells)", config.Rows, config.Columns, cells))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Tile kinds: %d", config.TileKinds))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Pairs dealt: %d", pairs))
		if cells%2 != 0 {
			result.Errors = append(result.Errors, "✓ Odd cell count: one cell stays empty")
		}
		if config.Seed != 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Fixed seed: %d", config.Seed))
		}
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
