package ethereum

import (
	"math/big"

	"github.com/chainsafe/navette/pkg/ethereum/contracts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Transaction is the subset of a chain transaction the swap engine inspects
type Transaction struct {
	Hash    common.Hash
	From    common.Address
	To      *common.Address
	Value   *big.Int
	Data    []byte
	Pending bool
}

// Receipt is the subset of a transaction receipt the swap engine inspects
type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	Succeeded   bool
	GasUsed     uint64
}

// TransferEvent represents an ERC20 Transfer log
type TransferEvent struct {
	Token       common.Address
	From        common.Address
	To          common.Address
	Value       *big.Int
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

func newReceipt(r *types.Receipt) *Receipt {
	out := &Receipt{
		TxHash:    r.TxHash,
		Succeeded: r.Status == types.ReceiptStatusSuccessful,
		GasUsed:   r.GasUsed,
	}
	if r.BlockNumber != nil {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	return out
}

func newTransferEvent(token common.Address, ev *contracts.ERC20Transfer) *TransferEvent {
	return &TransferEvent{
		Token:       token,
		From:        ev.From,
		To:          ev.To,
		Value:       ev.Value,
		BlockNumber: ev.Raw.BlockNumber,
		TxHash:      ev.Raw.TxHash,
		LogIndex:    ev.Raw.Index,
	}
}
