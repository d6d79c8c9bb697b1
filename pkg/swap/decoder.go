package swap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/chainsafe/navette/pkg/ethereum/contracts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// amountPlaces is the number of fractional digits kept on decoded amounts
const amountPlaces = 2

// transferSelector is the ERC20 transfer(address,uint256) method id
var transferSelector = []byte{0xa9, 0x05, 0x9c, 0xbb}

// TokenReader resolves token metadata on the source chain
type TokenReader interface {
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
}

// Transfer is a source transaction normalized to a native or ERC20 transfer
type Transfer struct {
	IsERC20   bool
	Recipient common.Address
	Token     *common.Address
	RawAmount *big.Int
	Amount    decimal.Decimal
}

// Decoder maps transaction call data to a Transfer
type Decoder struct {
	tokens TokenReader
}

// NewDecoder creates a decoder resolving decimals through tokens
func NewDecoder(tokens TokenReader) *Decoder {
	return &Decoder{tokens: tokens}
}

// Decode interprets tx as a native value transfer (empty call data) or an ERC20
// transfer call. Any other shape yields a *DecodeError.
func (d *Decoder) Decode(ctx context.Context, tx *ethereum.Transaction) (*Transfer, error) {
	if tx.To == nil {
		return nil, &DecodeError{Reason: "contract creation"}
	}

	if len(tx.Data) == 0 {
		return &Transfer{
			Recipient: *tx.To,
			RawAmount: tx.Value,
			Amount:    RoundAmount(ethereum.ToDecimal(tx.Value, ethereum.NativeDecimals)),
		}, nil
	}

	if len(tx.Data) < len(transferSelector) || !bytes.Equal(tx.Data[:len(transferSelector)], transferSelector) {
		return nil, &DecodeError{Reason: fmt.Sprintf("unsupported call data 0x%x", head(tx.Data, 4))}
	}

	recipient, raw, err := unpackTransfer(tx.Data[len(transferSelector):])
	if err != nil {
		return nil, &DecodeError{Reason: "malformed transfer arguments", Err: err}
	}

	token := *tx.To
	decimals, err := d.tokens.TokenDecimals(ctx, token)
	if err != nil {
		return nil, &DecodeError{Reason: "token decimals unavailable", Err: err}
	}

	return &Transfer{
		IsERC20:   true,
		Recipient: recipient,
		Token:     &token,
		RawAmount: raw,
		Amount:    RoundAmount(ethereum.ToDecimal(raw, decimals)),
	}, nil
}

// RoundAmount normalizes a quantity to two fractional digits, half away from zero
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(amountPlaces)
}

func unpackTransfer(args []byte) (common.Address, *big.Int, error) {
	parsed, err := contracts.ERC20MetaData.GetAbi()
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("failed to parse ERC20 ABI: %w", err)
	}

	values, err := parsed.Methods["transfer"].Inputs.Unpack(args)
	if err != nil {
		return common.Address{}, nil, err
	}
	if len(values) != 2 {
		return common.Address{}, nil, errors.New("unexpected argument count")
	}

	to, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, nil, errors.New("invalid 'to' address in transfer")
	}
	amount, ok := values[1].(*big.Int)
	if !ok {
		return common.Address{}, nil, errors.New("invalid 'value' in transfer")
	}
	return to, amount, nil
}

func head(b []byte, n int) []byte {
	if len(b) < n {
		return b
	}
	return b[:n]
}
