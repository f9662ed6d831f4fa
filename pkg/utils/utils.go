package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// FormatMoney renders a decimal amount with two fraction digits and a dollar sign.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatMarketCap renders a market cap in billions, millions or raw dollars.
func FormatMarketCap(cap int64) string {
	d := decimal.NewFromInt(cap)
	switch {
	case cap >= 1_000_000_000:
		return "$" + d.Div(decimal.NewFromInt(1_000_000_000)).StringFixed(2) + "B"
	case cap >= 1_000_000:
		return "$" + d.Div(decimal.NewFromInt(1_000_000)).StringFixed(2) + "M"
	default:
		return "$" + d.StringFixed(0)
	}
}

// NormalizeTicker trims whitespace and uppercases a ticker symbol.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
