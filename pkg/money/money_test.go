package money

import (
	"errors"
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"10000", 1000000},
		{"12.344", 1234},
		{"12.345", 1235},
		{"12.355", 1236},
		{"-12.345", -1235},
		{"0.005", 1},
		{"0.004", 0},
	}
	for _, c := range cases {
		got, err := ToMinorUnits(stddec.RequireFromString(c.in))
		if err != nil {
			t.Fatalf("ToMinorUnits(%s) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ToMinorUnits(%s) got %d want %d", c.in, got, c.want)
		}
	}

	if _, err := ToMinorUnits(stddec.RequireFromString("1e30")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for out-of-range value, got %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"10000.00", 1000000},
		{"10,000.00", 1000000},
		{"$10,000.00", 1000000},
		{" $500 ", 50000},
		{"1,234,567.891", 123456789},
		{"-$5.00", -500},
		{"+7", 700},
		{".5", 50},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseAmount(%q) got %d want %d", c.in, got, c.want)
		}
	}

	bad := []string{"", "abc", "$", "1,23.00", "12,3456", "1.2.3", "NaN", "Inf", "1e5", "10.000,00", "$-5"}
	for _, in := range bad {
		if _, err := ParseAmount(in); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q) expected ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestParseRate(t *testing.T) {
	cases := []struct {
		in   string
		want BasisPoints
	}{
		{"7.5", 750},
		{"24%", 2400},
		{"10.00", 1000},
		{"0", 0},
		{"0.125", 13},
		{"-3", -300},
	}
	for _, c := range cases {
		got, err := ParseRate(c.in)
		if err != nil {
			t.Fatalf("ParseRate(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseRate(%q) got %d want %d", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "%", "seven", "1e2", "NaN"} {
		if _, err := ParseRate(in); !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("ParseRate(%q) expected ErrInvalidRate, got %v", in, err)
		}
	}
}

func TestApplyGrowth(t *testing.T) {
	cases := []struct {
		balance Cents
		rate    BasisPoints
		want    Cents
	}{
		{1000000, 1000, 1100000},
		{0, 750, 0},
		{1000000, 0, 1000000},
		{5, 1000, 6},   // 5.5 rounds up
		{-5, 1000, -6}, // -5.5 rounds away from zero
		{14, 1000, 15}, // 15.4
		{1000000, -500, 950000},
	}
	for _, c := range cases {
		got, err := ApplyGrowth(c.balance, c.rate)
		if err != nil {
			t.Fatalf("ApplyGrowth(%d, %d) unexpected error: %v", c.balance, c.rate, err)
		}
		if got != c.want {
			t.Fatalf("ApplyGrowth(%d, %d) got %d want %d", c.balance, c.rate, got, c.want)
		}
	}
}

func TestApplyTax(t *testing.T) {
	cases := []struct {
		amount Cents
		rate   BasisPoints
		want   Cents
	}{
		{100000, 5000, 50000},
		{5, 5000, 3},   // 2.5 rounds up
		{-5, 5000, -3}, // -2.5 rounds away from zero
		{4, 3333, 1},   // 1.3332
		{3, 5000, 2},   // 1.5
		{100000, 0, 0},
		{123456, 2400, 29629}, // 29629.44
	}
	for _, c := range cases {
		got, err := ApplyTax(c.amount, c.rate)
		if err != nil {
			t.Fatalf("ApplyTax(%d, %d) unexpected error: %v", c.amount, c.rate, err)
		}
		if got != c.want {
			t.Fatalf("ApplyTax(%d, %d) got %d want %d", c.amount, c.rate, got, c.want)
		}
	}
}

func TestLargeBalancesUseWideIntermediate(t *testing.T) {
	// 10^15 cents * 20000 overflows int64 but the result fits.
	got, err := ApplyGrowth(1_000_000_000_000_000, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2_000_000_000_000_000 {
		t.Fatalf("ApplyGrowth large got %d", got)
	}

	if _, err := ApplyGrowth(math.MaxInt64, 10000); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if _, err := Add(math.MaxInt64, 1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow from Add, got %v", err)
	}
	if s, err := Add(-5, 3); err != nil || s != -2 {
		t.Fatalf("Add(-5, 3) got %d, %v", s, err)
	}
}

func TestAfterTax(t *testing.T) {
	cases := []struct {
		rate BasisPoints
		tax  BasisPoints
		want BasisPoints
	}{
		{1000, 2400, 760},
		{750, 0, 750},
		{1000, 10000, 0},
		{0, 5000, 0},
		{-1000, 5000, -1000}, // losses are not taxed
	}
	for _, c := range cases {
		got, err := c.rate.AfterTax(c.tax)
		if err != nil {
			t.Fatalf("AfterTax(%d, %d) unexpected error: %v", c.rate, c.tax, err)
		}
		if got != c.want {
			t.Fatalf("AfterTax(%d, %d) got %d want %d", c.rate, c.tax, got, c.want)
		}
	}

	if _, err := BasisPoints(math.MaxInt64).AfterTax(-10000); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestStringAndFormat(t *testing.T) {
	if got := Cents(123450).String(); got != "1234.50" {
		t.Fatalf("String got %s", got)
	}
	if got := Cents(5).String(); got != "0.05" {
		t.Fatalf("String got %s", got)
	}
	if got := Cents(123450).Format(); got != "$1234.50" {
		t.Fatalf("Format got %s", got)
	}
	if got := BasisPoints(750).String(); got != "7.50%" {
		t.Fatalf("BasisPoints String got %s", got)
	}
}

func TestJSON(t *testing.T) {
	b, err := Cents(1050000).MarshalJSON()
	if err != nil || string(b) != "10500.00" {
		t.Fatalf("MarshalJSON got %s, %v", b, err)
	}
	b, err = Cents(-5).MarshalJSON()
	if err != nil || string(b) != "-0.05" {
		t.Fatalf("MarshalJSON negative got %s, %v", b, err)
	}
}
