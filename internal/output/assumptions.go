package output

import (
	"fmt"

	"github.com/rpgo/taxdrag/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions that hold for every run.
var DefaultAssumptions = []string{
	"Tax-advantaged account: Roth-style, contributions and growth are never taxed",
	"Taxable account: growth is realized and taxed every year; contributions are not taxed",
	"Losses are not taxed and are not carried forward",
	"Contributions are made at the start of each year, before growth",
	"Amounts are kept in whole cents; growth and tax round half away from zero",
}

// GenerateAssumptions creates the assumptions list including the run's rates
func GenerateAssumptions(in domain.SimulationInput) []string {
	return append([]string{
		fmt.Sprintf("Fixed annual rate of return: %s", in.GrowthRate),
		fmt.Sprintf("Flat tax rate on taxable growth: %s", in.TaxRate),
	}, DefaultAssumptions...)
}
