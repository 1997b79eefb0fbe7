package config

import (
	"fmt"
	"os"

	"github.com/rpgo/taxdrag/internal/calculation"
	"github.com/rpgo/taxdrag/internal/domain"
	"github.com/rpgo/taxdrag/pkg/money"
	"gopkg.in/yaml.v3"
)

// DefaultCSVPath is used when no output path is configured.
const DefaultCSVPath = "simulation_results.csv"

// InputParser handles parsing of scenario files and raw input values
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := checkYears(&doc); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	var config domain.Configuration
	if err := doc.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// checkYears reports a non-integer scenario.years as an invalid horizon
// rather than a YAML type error.
func checkYears(doc *yaml.Node) error {
	years := mappingValue(documentRoot(doc), "scenario", "years")
	if years == nil {
		return nil
	}
	var n int
	if years.Kind != yaml.ScalarNode || years.ShortTag() != "!!int" || years.Decode(&n) != nil {
		return fmt.Errorf("%w: years must be a whole number, got %q", calculation.ErrInvalidHorizon, years.Value)
	}
	return nil
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}

// mappingValue follows keys through nested mappings and returns the value
// node, or nil when any key is missing.
func mappingValue(n *yaml.Node, keys ...string) *yaml.Node {
	for _, key := range keys {
		if n == nil || n.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == key {
				next = n.Content[i+1]
				break
			}
		}
		n = next
	}
	return n
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if _, err := ip.ParseScenario(config.Scenario); err != nil {
		return err
	}
	for _, f := range config.Output.Formats {
		if f == "" {
			return fmt.Errorf("output format names cannot be empty")
		}
	}
	return nil
}

// ParseScenario converts raw scenario values into the fixed-point simulation
// input and validates the result.
func (ip *InputParser) ParseScenario(sc domain.ScenarioConfig) (domain.SimulationInput, error) {
	principal, err := money.ParseAmount(sc.Principal)
	if err != nil {
		return domain.SimulationInput{}, fmt.Errorf("principal: %w", err)
	}
	contribution, err := money.ParseAmount(sc.AnnualContribution)
	if err != nil {
		return domain.SimulationInput{}, fmt.Errorf("annual contribution: %w", err)
	}
	growth, err := money.ParseRate(sc.GrowthRatePercent)
	if err != nil {
		return domain.SimulationInput{}, fmt.Errorf("growth rate: %w", err)
	}
	tax, err := money.ParseRate(sc.TaxRatePercent)
	if err != nil {
		return domain.SimulationInput{}, fmt.Errorf("tax rate: %w", err)
	}

	in := domain.SimulationInput{
		Principal:          principal,
		AnnualContribution: contribution,
		GrowthRate:         growth,
		TaxRate:            tax,
		Years:              sc.Years,
	}
	if err := calculation.ValidateInput(in); err != nil {
		return domain.SimulationInput{}, err
	}
	return in, nil
}

// CSVPath returns the configured CSV path or the default.
func CSVPath(config *domain.Configuration) string {
	if config == nil || config.Output.CSVPath == "" {
		return DefaultCSVPath
	}
	return config.Output.CSVPath
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenario: domain.ScenarioConfig{
			Principal:          "$10,000.00",
			AnnualContribution: "$500.00",
			GrowthRatePercent:  "7.5",
			TaxRatePercent:     "24",
			Years:              30,
		},
		Output: domain.OutputConfig{
			CSVPath: DefaultCSVPath,
			Formats: []string{"csv"},
		},
	}
}
