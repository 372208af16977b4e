// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"failpolicy-sim/internal/scenario"
	"failpolicy-sim/internal/workload"
)

// ServiceConfig describes the simulated request processor.
type ServiceConfig struct {
	// FailureRate is the nominal failure rate carried as metadata; it is
	// never used to generate randomness.
	FailureRate float64 `yaml:"failure_rate"`
	Fallback    string  `yaml:"fallback"`
}

// RequestSpec describes one inline stream element; a null payload marks an
// absent request.
type RequestSpec struct {
	Payload *string `yaml:"payload"`
}

// SimulationConfig is the root configuration for one simulation.
type SimulationConfig struct {
	// Scenario selects a built-in request sequence by name. Ignored when
	// Requests is set.
	Scenario string `yaml:"scenario"`
	// ScenarioFile loads a YAML scenario definition. Takes precedence over
	// Scenario, ignored when Requests is set.
	ScenarioFile string        `yaml:"scenario_file"`
	Service      ServiceConfig `yaml:"service"`
	// Policies lists the executors a compare run drives; defaults to all.
	Policies []string      `yaml:"policies"`
	Requests []RequestSpec `yaml:"requests"`
}

// Default returns the configuration used when no config file is given:
// the reference scenario, all policies, a 1% nominal failure rate.
func Default() *SimulationConfig {
	return &SimulationConfig{
		Scenario: "reference",
		Service:  ServiceConfig{FailureRate: 0.01},
	}
}

// Load loads YAML config and validates it against a CUE schema.
func Load(configPath, cueSchemaPath string) (*SimulationConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PolicyNames returns the configured policy list, or all known policies when
// the config leaves it empty.
func (c *SimulationConfig) PolicyNames(all []string) []string {
	if len(c.Policies) == 0 {
		return all
	}
	return c.Policies
}

// Resolve materializes the configured request sequence and its scenario
// label. Inline requests win over a scenario file, which wins over a
// built-in scenario name.
func (c *SimulationConfig) Resolve() ([]workload.RequestUnit, string, error) {
	if len(c.Requests) > 0 {
		payloads := make([]*string, len(c.Requests))
		for i, r := range c.Requests {
			payloads[i] = r.Payload
		}
		return workload.FromPayloads(payloads), "inline", nil
	}
	if c.ScenarioFile != "" {
		s, err := scenario.Load(c.ScenarioFile)
		if err != nil {
			return nil, "", err
		}
		return s.Units(), s.Name, nil
	}
	name := c.Scenario
	if name == "" {
		name = "reference"
	}
	s, err := scenario.Get(name)
	if err != nil {
		return nil, "", err
	}
	units := s.Units()
	if len(units) == 0 {
		return nil, "", fmt.Errorf("scenario %q resolved to an empty sequence", name)
	}
	return units, s.Name, nil
}
