package ethereum

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		raw      int64
		decimals uint8
		want     string
	}{
		{12345, 2, "123.45"},
		{100, 4, "0.01"},
		{1, 0, "1"},
		{0, 18, "0"},
	}
	for _, tt := range tests {
		got := ToDecimal(big.NewInt(tt.raw), tt.decimals)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "raw=%d decimals=%d got=%s", tt.raw, tt.decimals, got)
	}
	assert.True(t, ToDecimal(nil, 18).IsZero())
}

func TestToBaseUnits(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, wei, ToBaseUnits(decimal.RequireFromString("1.5"), 18))
	assert.Equal(t, big.NewInt(123), ToBaseUnits(decimal.RequireFromString("1.239"), 2))
	assert.Equal(t, big.NewInt(0), ToBaseUnits(decimal.Zero, 6))
}
