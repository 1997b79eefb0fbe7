package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/taxdrag/internal/domain"
)

// ConsoleFormatter renders the end-of-run summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeSummary(&buf, result.Summary)
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, s domain.Summary) {
	fmt.Fprintln(buf, "=== Simulation Complete ===")
	fmt.Fprintf(buf, "After %d years:\n", s.YearsSimulated)
	fmt.Fprintf(buf, "  Taxable Account:        %s\n", s.FinalTaxable.Format())
	fmt.Fprintf(buf, "  Tax-Advantaged Account: %s\n", s.FinalTaxAdvantaged.Format())
	fmt.Fprintf(buf, "  Tax Drag Loss:          %s\n", s.TaxDragLoss.Format())
	fmt.Fprintf(buf, "  Loss as %% of tax-free:  %s\n", FormatPercentage(s.TaxDragPercent))
}
