package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicker(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeTicker(" aapl "))
	assert.Equal(t, "GOOG", NormalizeTicker("GOOG"))
	assert.Equal(t, "", NormalizeTicker("   "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
	assert.Equal(t, "héll", Truncate("héllo", 4))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1782.50", FormatMoney(decimal.RequireFromString("1782.5")))
	assert.Equal(t, "$0.00", FormatMoney(decimal.Zero))
}

func TestFormatMarketCap(t *testing.T) {
	assert.Equal(t, "$2.80B", FormatMarketCap(2_800_000_000))
	assert.Equal(t, "$15.00M", FormatMarketCap(15_000_000))
	assert.Equal(t, "$950000", FormatMarketCap(950_000))
}
