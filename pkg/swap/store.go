package swap

import (
	"context"

	"github.com/shopspring/decimal"
)

// Store is the persistence contract of the swap engine.
// Implemented by swapstore; defined here so the engine does not depend on bun.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// AddSwap inserts rec and returns ErrSwapExists when the hash is already recorded.
	AddSwap(ctx context.Context, rec *Record) (*Record, error)
	// GetSwap returns nil, nil when no record exists for hash.
	GetSwap(ctx context.Context, hash string) (*Record, error)
	ListSwaps(ctx context.Context) ([]*Record, error)

	SeedAssets(ctx context.Context, assets []*Asset) error
	// GetAsset returns nil, nil when the pair is unknown.
	GetAsset(ctx context.Context, network, ticker string) (*Asset, error)
	ListAssets(ctx context.Context, networks ...string) ([]*Asset, error)
	UpdateAssetBalance(ctx context.Context, network, ticker string, balance decimal.Decimal) error
	SetAssetAvailability(ctx context.Context, network, ticker string, available bool) (*Asset, error)

	CreateExecution(ctx context.Context, exec *Execution) error
	UpdateExecutionState(ctx context.Context, sendTx string, state ExecutionState) error
	ListOpenExecutions(ctx context.Context) ([]*Execution, error)
	HasOpenExecution(ctx context.Context, hash string) (bool, error)
}
