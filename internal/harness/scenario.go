package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a document scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. Also the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Type is the document type to create.
	Type string `yaml:"type"`

	// Steps are submitted in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state and history.
	Assertions []Assertion `yaml:"assertions"`
}

// Step submits one action.
type Step struct {
	// Kind is the action kind, e.g. "addStep".
	Kind string `yaml:"kind"`

	// Input is the action input. Omitted means {}.
	Input map[string]any `yaml:"input,omitempty"`

	// ExpectError is the expected rejection code. Empty means the step must
	// apply.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Assertion validates the final document.
type Assertion struct {
	// Type is one of state (default), absent, count, history.
	Type string `yaml:"type,omitempty"`

	// Path selects a value in the global state (state, absent, count).
	Path string `yaml:"path,omitempty"`

	// Equals is the expected value (state). A node rather than a value so
	// that "equals: null" is distinguishable from a missing field.
	Equals *yaml.Node `yaml:"equals,omitempty"`

	// Count is the expected length (count).
	Count *int `yaml:"count,omitempty"`

	// Kinds is the expected sequence of applied kinds (history).
	Kinds []string `yaml:"kinds,omitempty"`
}

// Assertion type constants.
const (
	AssertState   = "state"
	AssertAbsent  = "absent"
	AssertCount   = "count"
	AssertHistory = "history"
)

// kind returns the assertion type with the default applied.
func (a Assertion) kind() string {
	if a.Type == "" {
		return AssertState
	}
	return a.Type
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict fields catch typos like "assertion:" vs "assertions:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Type == "" {
		return fmt.Errorf("type is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if step.Kind == "" {
			return fmt.Errorf("steps[%d]: kind is required", i)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a Assertion) error {
	switch a.kind() {
	case AssertState:
		if a.Path == "" {
			return fmt.Errorf("assertions[%d]: path is required for state", index)
		}
		if a.Equals == nil {
			return fmt.Errorf("assertions[%d]: equals is required for state", index)
		}
	case AssertAbsent:
		if a.Path == "" {
			return fmt.Errorf("assertions[%d]: path is required for absent", index)
		}
	case AssertCount:
		if a.Path == "" {
			return fmt.Errorf("assertions[%d]: path is required for count", index)
		}
		if a.Count == nil || *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: non-negative count is required for count", index)
		}
	case AssertHistory:
		// An empty or missing kinds list asserts that nothing applied.
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
