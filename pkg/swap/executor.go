package swap

import (
	"context"
	"math/big"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DestinationChain is the signing side of the bridge
type DestinationChain interface {
	Name() string
	SignTokenTransfer(ctx context.Context, token, to common.Address, amount *big.Int) (*types.Transaction, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	WaitMined(ctx context.Context, tx *types.Transaction) (*ethereum.Receipt, error)
}

// PreparedTransfer is a signed destination transfer that has not been broadcast
type PreparedTransfer struct {
	tx        *types.Transaction
	Recipient common.Address
	Amount    decimal.Decimal
}

// Hash returns the destination transaction hash
func (p *PreparedTransfer) Hash() common.Hash {
	return p.tx.Hash()
}

// Nonce returns the operator nonce consumed by the transfer
func (p *PreparedTransfer) Nonce() uint64 {
	return p.tx.Nonce()
}

// Executor performs the mirrored ERC20 transfer on the destination chain
type Executor struct {
	chain  DestinationChain
	logger *zap.Logger
}

// NewExecutor creates an executor submitting through chain
func NewExecutor(chain DestinationChain, logger *zap.Logger) *Executor {
	return &Executor{
		chain:  chain,
		logger: logger.With(zap.String("component", "executor")),
	}
}

// Prepare signs transfer(recipient, amount*10^asset.Decimals) on the asset contract
func (e *Executor) Prepare(ctx context.Context, asset *Asset, recipient common.Address, amount decimal.Decimal) (*PreparedTransfer, error) {
	units := ethereum.ToBaseUnits(amount, asset.Decimals)
	tx, err := e.chain.SignTokenTransfer(ctx, common.HexToAddress(asset.Address), recipient, units)
	if err != nil {
		return nil, &ExecutionError{Err: err}
	}
	return &PreparedTransfer{tx: tx, Recipient: recipient, Amount: amount}, nil
}

// Submit broadcasts a prepared transfer and blocks until it is mined.
func (e *Executor) Submit(ctx context.Context, p *PreparedTransfer) (*ethereum.Receipt, error) {
	sendTx := p.Hash().Hex()
	chain := e.chain.Name()

	if err := e.chain.SendTransaction(ctx, p.tx); err != nil {
		metrics.TransactionsSent.WithLabelValues(chain, "send_failed").Inc()
		return nil, &ExecutionError{SendTx: sendTx, Broadcast: true, Err: err}
	}

	e.logger.Info("Waiting for destination confirmation",
		zap.String("send_tx", sendTx),
		zap.String("recipient", p.Recipient.Hex()),
		zap.String("amount", p.Amount.String()))

	receipt, err := e.chain.WaitMined(ctx, p.tx)
	if err != nil {
		metrics.TransactionsSent.WithLabelValues(chain, "unconfirmed").Inc()
		return nil, &ExecutionError{SendTx: sendTx, Broadcast: true, Err: err}
	}
	if !receipt.Succeeded {
		metrics.TransactionsSent.WithLabelValues(chain, "reverted").Inc()
		return receipt, &ExecutionError{SendTx: sendTx, Broadcast: true, Reverted: true}
	}

	metrics.TransactionsSent.WithLabelValues(chain, "confirmed").Inc()
	e.logger.Info("Destination transfer confirmed",
		zap.String("send_tx", sendTx),
		zap.Uint64("block_number", receipt.BlockNumber),
		zap.Uint64("gas_used", receipt.GasUsed))

	return receipt, nil
}
