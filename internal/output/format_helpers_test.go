//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.3%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage_RoundsHalfUp(t *testing.T) {
	v := decimal.RequireFromString("4.55")
	if got, want := FormatPercentage(v), "4.6%"; got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}
