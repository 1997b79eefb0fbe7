package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/taxdrag/internal/domain"
	"github.com/rpgo/taxdrag/pkg/money"
)

// MaxYears bounds the projection horizon and therefore the report size.
const MaxYears = 100

// MinGrowthRate is the lowest accepted growth rate (-100%).
const MinGrowthRate = -money.OneHundredPercent

// MaxGrowthRate is the highest accepted growth rate (1000%).
const MaxGrowthRate = 10 * money.OneHundredPercent

// ErrInvalidHorizon is returned when the number of years is not in [1, MaxYears].
var ErrInvalidHorizon = errors.New("invalid horizon")

// Engine runs the taxable vs tax-advantaged projection
type Engine struct {
	Logger Logger
}

// NewEngine creates a new projection engine with a no-op logger
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ValidateInput checks a simulation input before any computation starts.
func ValidateInput(in domain.SimulationInput) error {
	if in.Years <= 0 || in.Years > MaxYears {
		return fmt.Errorf("%w: years must be between 1 and %d, got %d", ErrInvalidHorizon, MaxYears, in.Years)
	}
	if in.Principal < 0 {
		return fmt.Errorf("%w: principal cannot be negative", money.ErrInvalidAmount)
	}
	if in.AnnualContribution < 0 {
		return fmt.Errorf("%w: annual contribution cannot be negative", money.ErrInvalidAmount)
	}
	if in.TaxRate < 0 || in.TaxRate > money.OneHundredPercent {
		return fmt.Errorf("%w: tax rate must be between 0%% and 100%%, got %s", money.ErrInvalidRate, in.TaxRate)
	}
	// Negative growth is accepted but not otherwise verified.
	if in.GrowthRate < MinGrowthRate || in.GrowthRate > MaxGrowthRate {
		return fmt.Errorf("%w: growth rate must be between %s and %s, got %s", money.ErrInvalidRate, MinGrowthRate, MaxGrowthRate, in.GrowthRate)
	}
	return nil
}

// Run projects both accounts over in.Years years. Each year the contribution is
// added to both accounts, growth is applied, and the taxable account pays tax on
// the growth portion only.
func (e *Engine) Run(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.Logger.Debugf("projection start: principal=%s contribution=%s growth=%s tax=%s years=%d",
		in.Principal, in.AnnualContribution, in.GrowthRate, in.TaxRate, in.Years)

	taxable := in.Principal
	advantaged := in.Principal
	snapshots := make([]domain.YearlySnapshot, 0, in.Years)

	for year := 1; year <= in.Years; year++ {
		var err error
		advantaged, err = stepTaxAdvantaged(advantaged, in)
		if err != nil {
			return nil, fmt.Errorf("year %d tax-advantaged account: %w", year, err)
		}

		var interest, tax money.Cents
		taxable, interest, tax, err = stepTaxable(taxable, in)
		if err != nil {
			return nil, fmt.Errorf("year %d taxable account: %w", year, err)
		}

		snap := domain.YearlySnapshot{
			Year:                 year,
			TaxableBalance:       taxable,
			TaxAdvantagedBalance: advantaged,
			TaxDragLoss:          advantaged - taxable,
			TaxableInterest:      interest,
			TaxPaid:              tax,
		}
		snapshots = append(snapshots, snap)

		e.Logger.Debugf("year %d: taxable=%s advantaged=%s interest=%s tax=%s drag=%s",
			year, taxable, advantaged, interest, tax, snap.TaxDragLoss)
	}

	summary, err := Summarize(in, snapshots)
	if err != nil {
		return nil, err
	}
	e.Logger.Infof("projection complete: years=%d drag=%s (%s%%)",
		summary.YearsSimulated, summary.TaxDragLoss, summary.TaxDragPercent.StringFixed(1))

	return &domain.SimulationResult{
		Input:                     in,
		Snapshots:                 snapshots,
		FinalTaxableBalance:       taxable,
		FinalTaxAdvantagedBalance: advantaged,
		Summary:                   summary,
	}, nil
}

// stepTaxAdvantaged adds the contribution and applies untaxed growth.
func stepTaxAdvantaged(balance money.Cents, in domain.SimulationInput) (money.Cents, error) {
	funded, err := money.Add(balance, in.AnnualContribution)
	if err != nil {
		return 0, err
	}
	return money.ApplyGrowth(funded, in.GrowthRate)
}

// stepTaxable adds the contribution, applies growth, and deducts tax on the
// growth only. Contributions are not taxable events and losses are not taxed.
func stepTaxable(balance money.Cents, in domain.SimulationInput) (next, interest, tax money.Cents, err error) {
	pre, err := money.Add(balance, in.AnnualContribution)
	if err != nil {
		return 0, 0, 0, err
	}
	post, err := money.ApplyGrowth(pre, in.GrowthRate)
	if err != nil {
		return 0, 0, 0, err
	}
	interest = post - pre
	if interest > 0 {
		tax, err = money.ApplyTax(interest, in.TaxRate)
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return post - tax, interest, tax, nil
}
