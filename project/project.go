package project

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the subset of the project package.json this tool reads.
type Manifest struct {
	Name           string        `json:"name,omitempty"`
	CordovaPlugins []Declaration `json:"cordovaPlugins"`
}

// Load reads the project manifest at path. A missing or malformed manifest is
// an error; a manifest without cordovaPlugins simply declares nothing.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse project manifest %s: %w", path, err)
	}
	return &m, nil
}

// Specs normalizes every declaration, preserving order.
func (m *Manifest) Specs() []Spec {
	specs := make([]Spec, 0, len(m.CordovaPlugins))
	for _, d := range m.CordovaPlugins {
		specs = append(specs, d.Spec())
	}
	return specs
}
