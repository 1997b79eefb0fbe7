package money

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for currency values that are malformed,
	// non-finite, or outside the representable range.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidRate is returned for rate values that are malformed or out of range.
	ErrInvalidRate = errors.New("invalid rate")
	// ErrOverflow is returned when a fixed-point result does not fit in 64 bits.
	ErrOverflow = errors.New("fixed-point overflow")
)

// Cents is a monetary amount in minor currency units.
type Cents int64

// BasisPoints is a rate in hundredths of a percent (10000 = 100%).
type BasisPoints int64

// OneHundredPercent is 100% expressed in basis points.
const OneHundredPercent BasisPoints = 10000

const basisDivisor = uint64(OneHundredPercent)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// ToMinorUnits converts a decimal currency amount to cents, rounding half away
// from zero at the hundredths place.
func ToMinorUnits(amount decimal.Decimal) (Cents, error) {
	v, err := shiftToInt(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	return Cents(v), nil
}

// ToBasisPoints converts a percentage (7.5 means 7.5%) to basis points, rounding
// half away from zero.
func ToBasisPoints(percent decimal.Decimal) (BasisPoints, error) {
	v, err := shiftToInt(percent)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%%", ErrInvalidRate, percent.String())
	}
	return BasisPoints(v), nil
}

// shiftToInt multiplies by 100 and rounds to an integer. decimal.Round rounds
// half away from zero.
func shiftToInt(d decimal.Decimal) (int64, error) {
	r := d.Shift(2).Round(0)
	if r.GreaterThan(maxInt64) || r.LessThan(minInt64) {
		return 0, ErrOverflow
	}
	return r.IntPart(), nil
}

// ParseAmount parses a currency string without any locale dependency.
// Accepted: optional sign, optional "$", "," as a thousands separator and "."
// as the decimal separator, e.g. "$10,000.00", "-5", "1234.5".
func ParseAmount(s string) (Cents, error) {
	raw := strings.TrimSpace(s)
	body := raw
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	} else if strings.HasPrefix(body, "+") {
		body = body[1:]
	}
	body = strings.TrimSpace(strings.TrimPrefix(body, "$"))
	digits, ok := stripGrouping(body)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if neg {
		digits = "-" + digits
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return ToMinorUnits(d)
}

// ParseRate parses a percentage string such as "7.5", "24%" or "-3" into basis
// points.
func ParseRate(s string) (BasisPoints, error) {
	raw := strings.TrimSpace(s)
	body := strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	sign := ""
	if strings.HasPrefix(body, "-") {
		sign = "-"
		body = body[1:]
	} else if strings.HasPrefix(body, "+") {
		body = body[1:]
	}
	if !isPlainDecimal(body) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, raw)
	}
	d, err := decimal.NewFromString(sign + body)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRate, raw)
	}
	return ToBasisPoints(d)
}

// stripGrouping validates the thousands grouping of s and returns it with the
// separators removed.
func stripGrouping(s string) (string, bool) {
	if !strings.Contains(s, ",") {
		return s, isPlainDecimal(s)
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")
	groups := strings.Split(intPart, ",")
	for i, g := range groups {
		if !isDigits(g) {
			return "", false
		}
		if i == 0 && len(g) > 3 {
			return "", false
		}
		if i > 0 && len(g) != 3 {
			return "", false
		}
	}
	out := strings.Join(groups, "")
	if hasFrac {
		if !isDigits(frac) {
			return "", false
		}
		out += "." + frac
	}
	return out, true
}

// isPlainDecimal reports whether s is digits with at most one '.', and at
// least one digit. Exponents, NaN and Inf are rejected.
func isPlainDecimal(s string) bool {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if intPart == "" && frac == "" {
		return false
	}
	if intPart != "" && !isDigits(intPart) {
		return false
	}
	if hasFrac && frac != "" && !isDigits(frac) {
		return false
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ApplyGrowth returns balance * (10000 + rate) / 10000 rounded to the nearest
// cent, ties away from zero.
func ApplyGrowth(balance Cents, rate BasisPoints) (Cents, error) {
	v, err := mulDivRound(int64(balance), int64(OneHundredPercent+rate))
	return Cents(v), err
}

// ApplyTax returns amount * rate / 10000 rounded to the nearest cent, ties away
// from zero. It is the tax owed on amount, not the amount after tax.
func ApplyTax(amount Cents, rate BasisPoints) (Cents, error) {
	v, err := mulDivRound(int64(amount), int64(rate))
	return Cents(v), err
}

// Add returns a + b, or ErrOverflow if the sum does not fit.
func Add(a, b Cents) (Cents, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, ErrOverflow
	}
	return s, nil
}

// mulDivRound computes a*b/10000 with a 128-bit intermediate product and
// rounds half away from zero.
func mulDivRound(a, b int64) (int64, error) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(absU64(a), absU64(b))
	if hi >= basisDivisor {
		return 0, ErrOverflow
	}
	q, r := bits.Div64(hi, lo, basisDivisor)
	if r*2 >= basisDivisor {
		q++
		if q == 0 {
			return 0, ErrOverflow
		}
	}
	if neg {
		if q > 1<<63 {
			return 0, ErrOverflow
		}
		return int64(-q), nil
	}
	if q > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(q), nil
}

func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// AfterTax returns the rate left after taxing it at tax, r * (1 - T), rounded
// half away from zero. Only gains are taxed, so a zero or negative rate is
// returned unchanged.
func (b BasisPoints) AfterTax(tax BasisPoints) (BasisPoints, error) {
	if b <= 0 {
		return b, nil
	}
	v, err := mulDivRound(int64(b), int64(OneHundredPercent-tax))
	if err != nil {
		return 0, err
	}
	return BasisPoints(v), nil
}

// Decimal returns the amount in whole currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String returns the amount with exactly two fractional digits and '.' as the
// decimal separator.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Format formats the amount with a currency prefix.
func (c Cents) Format() string {
	return "$" + c.String()
}

// MarshalJSON encodes the amount as a JSON number in currency units.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// Percent returns the rate as a percentage (750 bp -> 7.5).
func (b BasisPoints) Percent() decimal.Decimal {
	return decimal.New(int64(b), -2)
}

// String formats the rate as a percentage with two decimals.
func (b BasisPoints) String() string {
	return b.Percent().StringFixed(2) + "%"
}
