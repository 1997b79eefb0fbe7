package domain

import (
	"github.com/rpgo/taxdrag/pkg/money"
	"github.com/shopspring/decimal"
)

// SimulationInput holds the fixed-point parameters of one projection run.
type SimulationInput struct {
	Principal          money.Cents       `json:"principal"`
	AnnualContribution money.Cents       `json:"annual_contribution"`
	GrowthRate         money.BasisPoints `json:"growth_rate_bp"`
	TaxRate            money.BasisPoints `json:"tax_rate_bp"`
	Years              int               `json:"years"`
}

// YearlySnapshot is the end-of-year state of both accounts.
type YearlySnapshot struct {
	Year                 int         `json:"year"`
	TaxableBalance       money.Cents `json:"taxable_balance"`
	TaxAdvantagedBalance money.Cents `json:"tax_advantaged_balance"`
	TaxDragLoss          money.Cents `json:"tax_drag_loss"`

	// Taxable account detail for the year
	TaxableInterest money.Cents `json:"taxable_interest"`
	TaxPaid         money.Cents `json:"tax_paid"`
}

// Summary provides the key metrics of a finished projection
type Summary struct {
	YearsSimulated       int               `json:"years_simulated"`
	FinalTaxable         money.Cents       `json:"final_taxable"`
	FinalTaxAdvantaged   money.Cents       `json:"final_tax_advantaged"`
	TaxDragLoss          money.Cents       `json:"tax_drag_loss"`
	TaxDragPercent       decimal.Decimal   `json:"tax_drag_percent"` // of the tax-advantaged balance
	TotalContributions   money.Cents       `json:"total_contributions"`
	TotalTaxPaid         money.Cents       `json:"total_tax_paid"`
	EffectiveTaxableRate money.BasisPoints `json:"effective_taxable_rate_bp"`
}

// SimulationResult is the full output of a projection run.
type SimulationResult struct {
	Input                     SimulationInput  `json:"input"`
	Snapshots                 []YearlySnapshot `json:"snapshots"`
	FinalTaxableBalance       money.Cents      `json:"final_taxable_balance"`
	FinalTaxAdvantagedBalance money.Cents      `json:"final_tax_advantaged_balance"`
	Summary                   Summary          `json:"summary"`
}
