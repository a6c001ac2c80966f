// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed defaults.json
var defaultsJSON []byte

// QuantumLibrary is a map to hold all quantum object definitions, keyed by their ID.
var QuantumLibrary map[string]QuantumDefinition

// Level holds the active level definition.
var Level LevelDefinition

// libraryFile mirrors the on-disk layout of data/quantum.json.
type libraryFile struct {
	Quantum []QuantumDefinition `json:"quantum"`
	Level   LevelDefinition     `json:"level"`
}

// LoadDefinitions reads the definitions file and populates QuantumLibrary
// and Level.
func LoadDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}
	if err := parseDefinitions(file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	fmt.Printf("Loaded %d quantum definitions\n", len(QuantumLibrary))
	return nil
}

// LoadDefaultDefinitions populates the libraries from the embedded defaults,
// so the game runs without a data directory.
func LoadDefaultDefinitions() error {
	if err := parseDefinitions(defaultsJSON); err != nil {
		return fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	fmt.Printf("Loaded %d quantum definitions (embedded defaults)\n", len(QuantumLibrary))
	return nil
}

func parseDefinitions(data []byte) error {
	var lib libraryFile
	if err := json.Unmarshal(data, &lib); err != nil {
		return err
	}
	QuantumLibrary = make(map[string]QuantumDefinition)
	for _, def := range lib.Quantum {
		if def.ID == "" {
			return fmt.Errorf("quantum definition with empty id")
		}
		QuantumLibrary[def.ID] = def
	}
	Level = lib.Level
	return nil
}
