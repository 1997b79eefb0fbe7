package output

import (
	"fmt"
	"os"

	"github.com/rpgo/taxdrag/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes result to path with the named formatter.
func GenerateReport(result *domain.SimulationResult, format, path string) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, result, path)
}

// SaveConfiguration writes config as YAML to filename.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, filename, err)
	}
	return nil
}
