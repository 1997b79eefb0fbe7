package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/taxdrag/internal/domain"
)

// Banner introduces the tool and its modeling assumptions.
const Banner = `=== Wealth Management Simulation ===
This tool compares taxable vs. tax-advantaged investment growth
Assumptions: Tax-advantaged = Roth-style (no tax on withdrawal)
             Taxable = annual tax on investment gains
`

// ConsoleVerboseFormatter renders the input verification block, the key
// assumptions, and the summary.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console-verbose" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(FormatInputVerification(result.Input))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(result.Input) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Total contributions:     %s\n", result.Summary.TotalContributions.Format())
	fmt.Fprintf(&buf, "Total tax paid:          %s\n", result.Summary.TotalTaxPaid.Format())
	fmt.Fprintf(&buf, "Effective taxable rate:  %s\n", result.Summary.EffectiveTaxableRate)
	fmt.Fprintln(&buf)
	writeSummary(&buf, result.Summary)
	return buf.Bytes(), nil
}

// FormatInputVerification echoes the parsed inputs before a run.
func FormatInputVerification(in domain.SimulationInput) []byte {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "--- Input Verification ---")
	fmt.Fprintf(&buf, "Principal:           %s\n", in.Principal.Format())
	fmt.Fprintf(&buf, "Annual Contribution: %s\n", in.AnnualContribution.Format())
	fmt.Fprintf(&buf, "Rate of Return:      %s\n", in.GrowthRate)
	fmt.Fprintf(&buf, "Tax Rate:            %s\n", in.TaxRate)
	fmt.Fprintf(&buf, "Years:               %d\n", in.Years)
	return buf.Bytes()
}
