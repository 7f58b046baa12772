// Package catalog holds the built-in pattern write-ups and the scenario
// loader used by the run command's --script flag.
package catalog

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/pkg/chain"
	"github.com/aretw0/espalier/pkg/command"
	"github.com/aretw0/espalier/pkg/demo"
	"github.com/aretw0/espalier/pkg/statebox"
)

// Scenario selects a demo and overrides its literals.
// Unset fields keep the demo's defaults.
type Scenario struct {
	Demo     string   `mapstructure:"demo"`
	Requests []string `mapstructure:"requests"` // chain
	Greeting string   `mapstructure:"greeting"` // command on-start payload
	Tasks    []string `mapstructure:"tasks"`    // command receiver arguments (two)
	States   []string `mapstructure:"states"`   // statebox
}

// LoadScenario reads and decodes a YAML scenario file.
// The YAML is parsed loosely and then decoded into the typed Scenario,
// so unknown keys are tolerated.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var loose map[string]any
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("invalid scenario YAML: %w", err)
	}

	var scenario Scenario
	if err := mapstructure.Decode(loose, &scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario shape: %w", err)
	}

	if scenario.Demo == "" {
		return nil, fmt.Errorf("scenario is missing the 'demo' key")
	}
	return &scenario, nil
}

// Build constructs the demo selected by the scenario with its overrides
// applied. Returns demo.ErrDemoNotFound for an unknown demo name.
func (s *Scenario) Build() (demo.Demo, error) {
	switch s.Demo {
	case "chain":
		return chain.NewDemo(chain.WithRequests(s.Requests...)), nil
	case "command":
		var taskA, taskB string
		if len(s.Tasks) > 0 {
			taskA = s.Tasks[0]
		}
		if len(s.Tasks) > 1 {
			taskB = s.Tasks[1]
		}
		return command.NewDemo(command.WithMessages(s.Greeting, taskA, taskB)), nil
	case "statebox":
		return statebox.NewDemo(statebox.WithStates(s.States...)), nil
	default:
		return nil, fmt.Errorf("%w: %s", demo.ErrDemoNotFound, s.Demo)
	}
}
