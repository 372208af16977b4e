package scenario

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"failpolicy-sim/internal/workload"
)

// Scenario defines a named, ordered request sequence with an overall
// description. Sequences are fixed at load time and never mutated.
type Scenario struct {
	Name        string    `yaml:"name,omitempty"`
	Description string    `yaml:"description,omitempty"`
	Requests    []Request `yaml:"requests"`
}

// Request describes one stream element. A null (or omitted) payload marks
// an absent request.
type Request struct {
	Payload *string `yaml:"payload"`
}

// Units materializes the sequence as runner input.
func (s *Scenario) Units() []workload.RequestUnit {
	payloads := make([]*string, len(s.Requests))
	for i, r := range s.Requests {
		payloads[i] = r.Payload
	}
	return workload.FromPayloads(payloads)
}

// Load reads a YAML scenario definition from disk.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Requests) == 0 {
		return nil, fmt.Errorf("scenario %q defines no requests", s.Name)
	}
	return &s, nil
}

// Get returns a built-in scenario by name.
func Get(name string) (Scenario, error) {
	s, ok := BuiltIn()[name]
	if !ok {
		return Scenario{}, fmt.Errorf("unknown scenario %q; built-in scenarios: %v", name, Names())
	}
	return s, nil
}

// Names lists the built-in scenario names, sorted.
func Names() []string {
	builtin := BuiltIn()
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
