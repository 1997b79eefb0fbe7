package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/taxdrag/internal/domain"
)

// CSVHeader is the fixed header of the yearly export.
var CSVHeader = []string{"Year", "Taxable_Balance", "Tax_Advantaged_Balance", "Tax_Drag_Loss"}

// CSVExporter writes one row per simulated year. Amounts always use two
// fractional digits and '.' as the decimal separator.
type CSVExporter struct{}

func (c CSVExporter) Name() string      { return "csv" }
func (c CSVExporter) Extension() string { return "csv" }

func (c CSVExporter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, s := range result.Snapshots {
		row := []string{
			strconv.Itoa(s.Year),
			s.TaxableBalance.String(),
			s.TaxAdvantagedBalance.String(),
			s.TaxDragLoss.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
