package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Catalog file names looked up inside a content directory.
const (
	DrillsFile    = "drills.json"
	ScenariosFile = "scenarios.json"
)

type drillsFile struct {
	Drills []DrillDefinition `json:"drills"`
}

type scenariosFile struct {
	Scenarios []Scenario `json:"scenarios"`
}

// LoadDrills reads and validates a drill catalog file.
func LoadDrills(path string) (*Drills, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read drills catalog: %w", err)
	}
	if err := validateJSON("drills", drillsSchemaJSON, raw); err != nil {
		return nil, fmt.Errorf("drills catalog %s: %w", path, err)
	}
	var f drillsFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode drills catalog: %w", err)
	}
	return NewDrills(f.Drills), nil
}

// LoadScenarios reads and validates a scenario catalog file.
func LoadScenarios(path string) (*Scenarios, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios catalog: %w", err)
	}
	if err := validateJSON("scenarios", scenariosSchemaJSON, raw); err != nil {
		return nil, fmt.Errorf("scenarios catalog %s: %w", path, err)
	}
	var f scenariosFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode scenarios catalog: %w", err)
	}
	return NewScenarios(f.Scenarios), nil
}

// LoadDir loads both catalogs from a directory. A missing file falls back
// to the built-in set for that catalog; an invalid file is an error.
func LoadDir(dir string) (*Drills, *Scenarios, error) {
	drills := BuiltinDrills()
	scenarios := BuiltinScenarios()

	if dir == "" {
		return drills, scenarios, nil
	}

	d, err := LoadDrills(filepath.Join(dir, DrillsFile))
	switch {
	case err == nil:
		drills = d
	case !errors.Is(err, fs.ErrNotExist):
		return nil, nil, err
	}

	s, err := LoadScenarios(filepath.Join(dir, ScenariosFile))
	switch {
	case err == nil:
		scenarios = s
	case !errors.Is(err, fs.ErrNotExist):
		return nil, nil, err
	}

	return drills, scenarios, nil
}
