// Package importer loads a whole wheel — layers and their activities —
// from a YAML file, validates it, and writes it transactionally.
package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WheelImport is the top-level YAML structure for wheel import.
type WheelImport struct {
	Layers     []LayerImport    `yaml:"layers"`
	Activities []ActivityImport `yaml:"activities"`
}

// LayerImport defines one ring in the import file. Ref is a file-local
// handle activities point at; it never becomes an ID.
type LayerImport struct {
	Ref         string `yaml:"ref"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type,omitempty"`
	Color       string `yaml:"color,omitempty"`
	Description string `yaml:"description,omitempty"`
	RingIndex   *int   `yaml:"ring_index,omitempty"`
	Hidden      bool   `yaml:"hidden,omitempty"`
}

// ActivityImport defines one activity in the import file.
type ActivityImport struct {
	LayerRef    string `yaml:"layer_ref"`
	Title       string `yaml:"title"`
	Type        string `yaml:"type,omitempty"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date,omitempty"`
	Color       string `yaml:"color,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// LoadFile reads and parses an import file.
func LoadFile(path string) (*WheelImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema WheelImport
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
