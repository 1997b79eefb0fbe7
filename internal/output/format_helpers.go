package output

import "github.com/shopspring/decimal"

// FormatPercentage formats a decimal percentage with one decimal place.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }
