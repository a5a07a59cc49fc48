package main

import (
	"os"
	"testing"
)

func TestAnalysisConfig(t *testing.T) {
	config := AnalysisConfig{
		Name:        "Test Config",
		Description: "Test configuration",
		Rows:        4,
		Columns:     6,
		TileKinds:   6,
		Messages: map[string]string{
			"welcome": "Welcome!",
		},
	}

	if config.Name != "Test Config" {
		t.Errorf("Expected Name 'Test Config', got '%s'", config.Name)
	}

	if config.Rows != 4 || config.Columns != 6 {
		t.Errorf("Expected 4x6 board, got %dx%d", config.Rows, config.Columns)
	}
}

func TestContainsVerb(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"Linked! %d tiles remaining.", true},
		{"%d", true},
		{"No verb here.", false},
		{"Stray percent % d", false},
		{"", false},
	}

	for _, test := range tests {
		result := containsVerb(test.input)
		if result != test.expected {
			t.Errorf("containsVerb(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestAnalyzeConfig_ValidFile(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test configuration",
		"rows": 4,
		"columns": 6,
		"tile_kinds": 6,
		"messages": {
			"welcome": "Welcome!",
			"matched": "Linked! %d tiles remaining."
		}
	}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}

func TestAnalyzeConfig_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid file: %v", r)
		}
	}()

	analyzeConfig("/non/existent/file.json")
}

func TestAnalyzeConfig_InvalidJSON(t *testing.T) {
	invalidJSON := `{"name": "test", invalid json}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(invalidJSON)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid JSON: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}

func TestAnalyzeConfig_TooManyKinds(t *testing.T) {
	// 2x2 board (2 pairs) with 8 kinds: most kinds never appear
	config := `{
		"name": "Sparse",
		"rows": 2,
		"columns": 2,
		"tile_kinds": 8,
		"messages": {}
	}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(config)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked on sparse kinds: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}
