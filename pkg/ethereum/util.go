package ethereum

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the number of fractional digits of the native currency.
const NativeDecimals = 18

// ToDecimal converts an integer amount of base units to a token quantity.
func ToDecimal(raw *big.Int, decimals uint8) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -int32(decimals))
}

// ToBaseUnits converts a token quantity to an integer amount of base units,
// truncating digits beyond the token precision.
func ToBaseUnits(amount decimal.Decimal, decimals uint8) *big.Int {
	return amount.Shift(int32(decimals)).Truncate(0).BigInt()
}
