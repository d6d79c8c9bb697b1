package swap

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/chainsafe/navette/pkg/ethereum/contracts"
)

func transferCallData(t *testing.T, to common.Address, amount *big.Int) []byte {
	t.Helper()
	parsed, err := contracts.ERC20MetaData.GetAbi()
	require.NoError(t, err)
	data, err := parsed.Pack("transfer", to, amount)
	require.NoError(t, err)
	return data
}

func TestDecode_NativeTransfer(t *testing.T) {
	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	wei, _ := new(big.Int).SetString("1234567000000000000", 10)

	got, err := NewDecoder(&fakeSource{}).Decode(context.Background(), &ethereum.Transaction{
		To:    &to,
		Value: wei,
	})
	require.NoError(t, err)

	assert.False(t, got.IsERC20)
	assert.Nil(t, got.Token)
	assert.Equal(t, to, got.Recipient)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("1.23")), "got %s", got.Amount)
}

func TestDecode_ERC20Transfer_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		raw      int64
		decimals uint8
		want     string
	}{
		{"two decimals", 12345, 2, "123.45"},
		{"four decimals", 100, 4, "0.01"},
		{"half rounds up", 150, 4, "0.02"},
		{"below half rounds down", 1249, 5, "0.01"},
		{"zero decimals", 7, 0, "7"},
	}

	token := common.HexToAddress("0xF57cE903E484ca8825F2c1EDc7F9EEa3744251eB")
	recipient := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{
				TokenDecimalsFunc: func(_ context.Context, got common.Address) (uint8, error) {
					assert.Equal(t, token, got)
					return tt.decimals, nil
				},
			}

			out, err := NewDecoder(source).Decode(context.Background(), &ethereum.Transaction{
				To:    &token,
				Value: big.NewInt(0),
				Data:  transferCallData(t, recipient, big.NewInt(tt.raw)),
			})
			require.NoError(t, err)

			assert.True(t, out.IsERC20)
			require.NotNil(t, out.Token)
			assert.Equal(t, token, *out.Token)
			assert.Equal(t, recipient, out.Recipient)
			assert.Equal(t, big.NewInt(tt.raw), out.RawAmount)
			assert.True(t, out.Amount.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", out.Amount, tt.want)
		})
	}
}

func TestDecode_Unsupported(t *testing.T) {
	token := common.HexToAddress("0xF57cE903E484ca8825F2c1EDc7F9EEa3744251eB")

	tests := []struct {
		name string
		tx   *ethereum.Transaction
	}{
		{"contract creation", &ethereum.Transaction{Value: big.NewInt(0), Data: []byte{0x60, 0x80}}},
		{"unknown selector", &ethereum.Transaction{To: &token, Value: big.NewInt(0), Data: []byte{0x09, 0x5e, 0xa7, 0xb3, 0x00}}},
		{"short call data", &ethereum.Transaction{To: &token, Value: big.NewInt(0), Data: []byte{0xa9, 0x05}}},
		{"truncated arguments", &ethereum.Transaction{To: &token, Value: big.NewInt(0), Data: []byte{0xa9, 0x05, 0x9c, 0xbb, 0x01}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(&fakeSource{}).Decode(context.Background(), tt.tx)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestDecode_DecimalsFailure(t *testing.T) {
	token := common.HexToAddress("0xF57cE903E484ca8825F2c1EDc7F9EEa3744251eB")
	rpcErr := errors.New("execution reverted")
	source := &fakeSource{
		TokenDecimalsFunc: func(context.Context, common.Address) (uint8, error) {
			return 0, rpcErr
		},
	}

	_, err := NewDecoder(source).Decode(context.Background(), &ethereum.Transaction{
		To:    &token,
		Value: big.NewInt(0),
		Data:  transferCallData(t, common.HexToAddress("0x01"), big.NewInt(1)),
	})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.ErrorIs(t, err, rpcErr)
}
