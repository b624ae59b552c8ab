// Package resume loads the résumé content shown by the viewer.
package resume

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

// Resume is the whole document.
type Resume struct {
	Name     string    `yaml:"name"`
	Headline string    `yaml:"headline"`
	Sections []Section `yaml:"sections"`
}

// Section is one tab of the résumé. A section may mix any of the
// content kinds; they render in the order About, Timeline, Cards,
// Skills, Contacts.
type Section struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Active   bool      `yaml:"active"`
	About    string    `yaml:"about"`
	Timeline []Entry   `yaml:"timeline"`
	Cards    []Card    `yaml:"cards"`
	Skills   []Skill   `yaml:"skills"`
	Contacts []Contact `yaml:"contacts"`
}

// Entry is a dated timeline item such as a job or a degree.
type Entry struct {
	Title   string `yaml:"title"`
	Org     string `yaml:"org"`
	Period  string `yaml:"period"`
	Summary string `yaml:"summary"`
}

// Card is a project or highlight.
type Card struct {
	Title   string   `yaml:"title"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
}

// Skill is a named proficiency. Level is a percentage string like "83%".
type Skill struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

// Contact is a label/value pair such as an email address.
type Contact struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Default returns the built-in sample résumé.
func Default() *Resume {
	r, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("resume: built-in sample is invalid: %v", err))
	}
	return r
}

// Load reads and validates the résumé at path.
func Load(path string) (*Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a YAML résumé.
func Parse(data []byte) (*Resume, error) {
	var r Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	if err := validateSchema(data); err != nil {
		return nil, err
	}
	if err := r.checkUniqueIDs(); err != nil {
		return nil, err
	}
	return &r, nil
}

// checkUniqueIDs rejects two sections sharing an id.
func (r *Resume) checkUniqueIDs() error {
	seen := make(map[string]bool, len(r.Sections))
	for _, s := range r.Sections {
		if seen[s.ID] {
			return fmt.Errorf("section %q: duplicate id", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
