package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	out := Format(decimal.RequireFromString("1234.5"), "COP")
	assert.Contains(t, out, "234")
	assert.NotEqual(t, "1234.5", out)

	assert.Equal(t, Format(decimal.NewFromInt(10), "COP"), Format(decimal.NewFromInt(10), "no-es-moneda"))
}

func TestValidISO(t *testing.T) {
	assert.True(t, ValidISO("COP"))
	assert.True(t, ValidISO("USD"))
	assert.False(t, ValidISO("PESOS"))
}
