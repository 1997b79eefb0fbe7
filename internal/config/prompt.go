package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rpgo/taxdrag/internal/calculation"
	"github.com/rpgo/taxdrag/internal/domain"
)

// Prompter reads scenario values interactively, one line per value, in the
// fixed order principal, contribution, growth rate, tax rate, years.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// ReadScenario prompts for every scenario value.
func (p *Prompter) ReadScenario() (domain.ScenarioConfig, error) {
	var sc domain.ScenarioConfig
	var err error

	if sc.Principal, err = p.ask("Enter Principal (e.g. $10,000.00): "); err != nil {
		return sc, err
	}
	if sc.AnnualContribution, err = p.ask("Enter Annual Contribution (e.g. $500.00): "); err != nil {
		return sc, err
	}
	if sc.GrowthRatePercent, err = p.ask("Enter Rate of Return (% per year, e.g. 7.5): "); err != nil {
		return sc, err
	}
	if sc.TaxRatePercent, err = p.ask("Enter Tax Rate (% on gains, e.g. 24): "); err != nil {
		return sc, err
	}
	yearsRaw, err := p.ask(fmt.Sprintf("Enter Number of Years (1-%d): ", calculation.MaxYears))
	if err != nil {
		return sc, err
	}
	years, err := strconv.Atoi(yearsRaw)
	if err != nil {
		return sc, fmt.Errorf("%w: years must be a whole number, got %q", calculation.ErrInvalidHorizon, yearsRaw)
	}
	sc.Years = years
	return sc, nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}
