// Package casefile loads and runs YAML suites of verb-definition inputs with
// their expected verdicts.
package casefile

import (
	"fmt"
	"os"

	"github.com/martinemde/verbdef/verbdef"
	"gopkg.in/yaml.v3"
)

// Expectations accepted in the expect field.
const (
	ExpectAccept = "accept"
	ExpectReject = "reject"
)

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is one input and what the recognizer should make of it.
type Case struct {
	ID     string `yaml:"id"`
	Input  string `yaml:"input"`
	Expect string `yaml:"expect"`
	// Leading optionally lists the categories the token sequence must start with.
	Leading []string `yaml:"leading,omitempty"`
}

// leadingCategories resolves Leading into token categories.
func (c Case) leadingCategories() ([]verbdef.Category, error) {
	cats := make([]verbdef.Category, 0, len(c.Leading))
	for _, name := range c.Leading {
		cat, err := verbdef.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// LoadFromFile reads and validates the suite at path.
func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML suite and validates every case.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		switch c.Expect {
		case ExpectAccept, ExpectReject:
		default:
			return nil, fmt.Errorf("case %q: expect must be %q or %q, got %q", c.ID, ExpectAccept, ExpectReject, c.Expect)
		}

		if _, err := c.leadingCategories(); err != nil {
			return nil, fmt.Errorf("case %q: %w", c.ID, err)
		}
	}
	return &s, nil
}
