package calculation

import (
	"fmt"

	"github.com/rpgo/taxdrag/internal/domain"
	"github.com/rpgo/taxdrag/pkg/money"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Summarize derives the summary metrics from a finished snapshot sequence.
// Totals use checked arithmetic and report ErrOverflow like the projection loop.
func Summarize(in domain.SimulationInput, snapshots []domain.YearlySnapshot) (domain.Summary, error) {
	effective, err := in.GrowthRate.AfterTax(in.TaxRate)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("effective taxable rate: %w", err)
	}
	summary := domain.Summary{
		YearsSimulated:       len(snapshots),
		TaxDragPercent:       decimal.Zero,
		TotalContributions:   in.Principal,
		EffectiveTaxableRate: effective,
		FinalTaxable:         in.Principal,
		FinalTaxAdvantaged:   in.Principal,
	}

	for _, s := range snapshots {
		if summary.TotalContributions, err = money.Add(summary.TotalContributions, in.AnnualContribution); err != nil {
			return domain.Summary{}, fmt.Errorf("total contributions: %w", err)
		}
		if summary.TotalTaxPaid, err = money.Add(summary.TotalTaxPaid, s.TaxPaid); err != nil {
			return domain.Summary{}, fmt.Errorf("total tax paid: %w", err)
		}
	}
	if len(snapshots) == 0 {
		return summary, nil
	}

	last := snapshots[len(snapshots)-1]
	summary.FinalTaxable = last.TaxableBalance
	summary.FinalTaxAdvantaged = last.TaxAdvantagedBalance
	summary.TaxDragLoss = last.TaxDragLoss
	summary.TaxDragPercent = DragPercent(last.TaxDragLoss, last.TaxAdvantagedBalance)
	return summary, nil
}

// DragPercent returns drag as a percentage of base. A zero base yields zero.
func DragPercent(drag, base money.Cents) decimal.Decimal {
	if base == 0 {
		return decimal.Zero
	}
	return drag.Decimal().Mul(decimalHundred).Div(base.Decimal())
}
