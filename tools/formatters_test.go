package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDatetimeBR(t *testing.T) {
	ts := time.Date(2026, 8, 23, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "23/08/2026 14:05", FormatDatetimeBR(ts))
	assert.Equal(t, "23/08/2026", FormatDateBR(ts))
}

func TestFormatCurrencyBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatCurrencyBRL(0))
	assert.Equal(t, "R$ 9,90", FormatCurrencyBRL(990))
	assert.Equal(t, "R$ 29,90", FormatCurrencyBRL(2990))
	assert.Equal(t, "R$ 1.234,56", FormatCurrencyBRL(123456))
	assert.Equal(t, "R$ 1.234.567,89", FormatCurrencyBRL(123456789))
	assert.Equal(t, "-R$ 9,90", FormatCurrencyBRL(-990))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "curto", TruncateText("curto", 10))
	assert.Equal(t, "abc...", TruncateText("abcdefghij", 6))
	// conta runas, não bytes
	assert.Equal(t, "políti...", TruncateText("políticos brasileiros", 9))
}
