package swap

import (
	"context"
	"fmt"
	"math/big"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceReader reads an ERC20 balance on one network
type BalanceReader interface {
	TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error)
}

// Ledger is the engine's view of swap records and operator asset balances
type Ledger struct {
	store   Store
	readers map[string]BalanceReader
	owner   common.Address
	logger  *zap.Logger
}

// NewLedger creates a ledger reading balances of owner through readers, keyed by network name
func NewLedger(store Store, readers map[string]BalanceReader, owner common.Address, logger *zap.Logger) *Ledger {
	return &Ledger{
		store:   store,
		readers: readers,
		owner:   owner,
		logger:  logger.With(zap.String("component", "ledger")),
	}
}

// Seed inserts the configured assets, leaving existing rows untouched
func (l *Ledger) Seed(ctx context.Context, assets []*Asset) error {
	if err := l.store.SeedAssets(ctx, assets); err != nil {
		return fmt.Errorf("failed to seed assets: %w", err)
	}
	return nil
}

// AddSwap persists rec. A record for the same hash is never overwritten.
func (l *Ledger) AddSwap(ctx context.Context, rec *Record) (*Record, error) {
	return l.store.AddSwap(ctx, rec)
}

// GetSwap returns the record for hash or nil
func (l *Ledger) GetSwap(ctx context.Context, hash string) (*Record, error) {
	return l.store.GetSwap(ctx, hash)
}

// GetSwaps returns all records
func (l *Ledger) GetSwaps(ctx context.Context) ([]*Record, error) {
	return l.store.ListSwaps(ctx)
}

// GetAssetBalance returns the stored balance for the pair, nil when the asset
// is unknown or has never been refreshed.
func (l *Ledger) GetAssetBalance(ctx context.Context, network, ticker string) (*decimal.Decimal, error) {
	asset, err := l.store.GetAsset(ctx, network, ticker)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, nil
	}
	return asset.CurrentBalance, nil
}

// GetAsset returns the asset for the pair or nil
func (l *Ledger) GetAsset(ctx context.Context, network, ticker string) (*Asset, error) {
	return l.store.GetAsset(ctx, network, ticker)
}

// ListAssets returns the assets of the given networks, or all assets when none are given
func (l *Ledger) ListAssets(ctx context.Context, networks ...string) ([]*Asset, error) {
	return l.store.ListAssets(ctx, networks...)
}

// SetAssetAvailability toggles whether swaps may pay out in the asset
func (l *Ledger) SetAssetAvailability(ctx context.Context, network, ticker string, available bool) (*Asset, error) {
	asset, err := l.store.SetAssetAvailability(ctx, network, ticker, available)
	if err != nil {
		return nil, err
	}
	l.logger.Info("Asset availability changed",
		zap.String("network", network),
		zap.String("ticker", ticker),
		zap.Bool("available", available))
	return asset, nil
}

// UpdateAssetBalances re-reads the operator balance of every asset on the
// given networks. An asset whose chain read fails keeps its previous balance;
// a storage failure aborts the refresh.
func (l *Ledger) UpdateAssetBalances(ctx context.Context, networks ...string) error {
	assets, err := l.store.ListAssets(ctx, networks...)
	if err != nil {
		return fmt.Errorf("failed to list assets: %w", err)
	}

	for _, asset := range assets {
		reader, ok := l.readers[asset.Network]
		if !ok {
			l.logger.Warn("No balance reader for network", zap.String("network", asset.Network))
			continue
		}

		raw, err := reader.TokenBalance(ctx, common.HexToAddress(asset.Address), l.owner)
		if err != nil {
			metrics.ErrorsTotal.WithLabelValues("ledger", "balance_read").Inc()
			l.logger.Warn("Failed to read asset balance",
				zap.String("network", asset.Network),
				zap.String("ticker", asset.Ticker),
				zap.Error(err))
			continue
		}

		balance := ethereum.ToDecimal(raw, asset.Decimals)
		if err := l.store.UpdateAssetBalance(ctx, asset.Network, asset.Ticker, balance); err != nil {
			return fmt.Errorf("failed to store balance for %s/%s: %w", asset.Network, asset.Ticker, err)
		}
		metrics.AssetBalance.WithLabelValues(asset.Network, asset.Ticker).Set(balance.InexactFloat64())
	}
	return nil
}

// OpenExecution journals a signed destination transfer before it is broadcast
func (l *Ledger) OpenExecution(ctx context.Context, exec *Execution) error {
	if err := l.store.CreateExecution(ctx, exec); err != nil {
		return fmt.Errorf("failed to journal execution %s: %w", exec.SendTx, err)
	}
	return nil
}

// ResolveExecution moves a journaled execution to state
func (l *Ledger) ResolveExecution(ctx context.Context, sendTx string, state ExecutionState) error {
	if err := l.store.UpdateExecutionState(ctx, sendTx, state); err != nil {
		return fmt.Errorf("failed to mark execution %s %s: %w", sendTx, state, err)
	}
	return nil
}

// HasOpenExecution reports whether hash has an execution still executing or unresolved
func (l *Ledger) HasOpenExecution(ctx context.Context, hash string) (bool, error) {
	return l.store.HasOpenExecution(ctx, hash)
}

// OpenExecutions lists executions that are executing or unresolved
func (l *Ledger) OpenExecutions(ctx context.Context) ([]*Execution, error) {
	return l.store.ListOpenExecutions(ctx)
}
