package fixtures

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

type document struct {
	Teams []Team     `yaml:"teams"`
	Pie   []PieSlice `yaml:"pie"`
}

// Catalog is the validated, read-only set of fixtures.
type Catalog struct {
	teams []Team
	pie   []PieSlice
}

// Default loads the fixtures compiled into the binary.
func Default() (*Catalog, error) {
	return Load(demoYAML)
}

// LoadFile reads a fixture document from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Load(data)
}

// Load decodes and validates a YAML fixture document. Unknown fields are
// rejected. The pie is always derived from the teams; an explicit pie block
// in the document must agree with it.
func Load(data []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	if err := validateTeams(doc.Teams); err != nil {
		return nil, err
	}
	pie := AggregatePie(doc.Teams)
	if doc.Pie != nil {
		if err := validatePie(doc.Pie, pie); err != nil {
			return nil, err
		}
	}

	teams := make([]Team, len(doc.Teams))
	for i, t := range doc.Teams {
		teams[i] = t.clone()
	}
	return &Catalog{teams: teams, pie: pie}, nil
}

// Teams returns a copy of the teams in fixture order.
func (c *Catalog) Teams() []Team {
	out := make([]Team, len(c.teams))
	for i, t := range c.teams {
		out[i] = t.clone()
	}
	return out
}

// Team looks a team up by name.
func (c *Catalog) Team(name string) (Team, bool) {
	for _, t := range c.teams {
		if t.Name == name {
			return t.clone(), true
		}
	}
	return Team{}, false
}

// Names returns the team names in fixture order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.teams))
	for i, t := range c.teams {
		names[i] = t.Name
	}
	return names
}

// Pie returns the status breakdown: Pending, To Verify, Completed.
func (c *Catalog) Pie() []PieSlice {
	return append([]PieSlice(nil), c.pie...)
}
