// Package exercise loads cipher exercise sets from YAML and checks student
// answers against them. A set is the runtime half of the classroom
// assignment: named cases pairing an input and shift with the expected
// ciphertext.
package exercise

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Case is one exercise: encode Input with Shift and compare to Expected.
// An empty Expected marks the case as unanswered (verdict skip).
type Case struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Shift    int    `yaml:"shift"`
	Expected string `yaml:"expected"`
}

// Set is a named collection of cases, typically one assignment sheet.
type Set struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Load reads and validates a set from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exercise set: %w", err)
	}
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse exercise set %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid exercise set %q: %w", path, err)
	}
	return &s, nil
}

// Validate enforces the set shape: non-empty name, at least one case,
// unique non-empty case names, non-negative shifts.
func (s *Set) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("set name is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("set %q has no cases", s.Name)
	}
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
		if c.Shift < 0 {
			return fmt.Errorf("case %q: shift must be non-negative, got %d", c.Name, c.Shift)
		}
	}
	return nil
}
