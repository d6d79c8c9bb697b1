// Package swapstore is the postgres implementation of swap.Store
package swapstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/navette/pkg/swap"
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint violation
const uniqueViolation = "23505"

var openStates = []string{string(swap.ExecutionExecuting), string(swap.ExecutionUnresolved)}

var _ swap.Store = (*pgStore)(nil)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the swap store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) AddSwap(ctx context.Context, rec *swap.Record) (*swap.Record, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	dao := toSwapDao(rec)
	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, swap.ErrSwapExists
		}
		return nil, fmt.Errorf("failed to add swap: %w", err)
	}

	return toRecord(dao)
}

func (s *pgStore) GetSwap(ctx context.Context, hash string) (*swap.Record, error) {
	dao := new(SwapDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("hash = ?", hash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get swap: %w", err)
	}
	return toRecord(dao)
}

func (s *pgStore) ListSwaps(ctx context.Context) ([]*swap.Record, error) {
	var daos []SwapDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list swaps: %w", err)
	}

	records := make([]*swap.Record, len(daos))
	for i := range daos {
		rec, err := toRecord(&daos[i])
		if err != nil {
			return nil, err
		}
		records[i] = rec
	}
	return records, nil
}

// SeedAssets inserts assets that do not exist yet. Existing rows keep their
// address, decimals, availability and balance.
func (s *pgStore) SeedAssets(ctx context.Context, assets []*swap.Asset) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, asset := range assets {
			_, err := tx.NewInsert().
				Model(toAssetDao(asset)).
				On("CONFLICT (ticker, network) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed asset %s/%s: %w", asset.Network, asset.Ticker, err)
			}
		}
		return nil
	})
}

func (s *pgStore) GetAsset(ctx context.Context, network, ticker string) (*swap.Asset, error) {
	dao := new(AssetDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("network = ?", network).
		Where("ticker = ?", ticker).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return toAsset(dao)
}

func (s *pgStore) ListAssets(ctx context.Context, networks ...string) ([]*swap.Asset, error) {
	var daos []AssetDao
	query := s.db.NewSelect().
		Model(&daos).
		Order("network ASC", "ticker ASC")
	if len(networks) > 0 {
		query = query.Where("network IN (?)", bun.In(networks))
	}
	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	assets := make([]*swap.Asset, len(daos))
	for i := range daos {
		asset, err := toAsset(&daos[i])
		if err != nil {
			return nil, err
		}
		assets[i] = asset
	}
	return assets, nil
}

func (s *pgStore) UpdateAssetBalance(ctx context.Context, network, ticker string, balance decimal.Decimal) error {
	res, err := s.db.NewUpdate().
		Model((*AssetDao)(nil)).
		Set("current_balance = ?", balance.String()).
		Set("updated_at = NOW()").
		Where("network = ?", network).
		Where("ticker = ?", ticker).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update asset balance: %w", err)
	}
	return requireRow(res, swap.ErrAssetNotFound)
}

func (s *pgStore) SetAssetAvailability(ctx context.Context, network, ticker string, available bool) (*swap.Asset, error) {
	dao := new(AssetDao)
	res, err := s.db.NewUpdate().
		Model(dao).
		Set("available = ?", available).
		Set("updated_at = NOW()").
		Where("network = ?", network).
		Where("ticker = ?", ticker).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set asset availability: %w", err)
	}
	if err := requireRow(res, swap.ErrAssetNotFound); err != nil {
		return nil, err
	}
	return toAsset(dao)
}

func (s *pgStore) CreateExecution(ctx context.Context, exec *swap.Execution) error {
	_, err := s.db.NewInsert().
		Model(toExecutionDao(exec)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create execution: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateExecutionState(ctx context.Context, sendTx string, state swap.ExecutionState) error {
	res, err := s.db.NewUpdate().
		Model((*ExecutionDao)(nil)).
		Set("state = ?", string(state)).
		Set("updated_at = NOW()").
		Where("send_tx = ?", sendTx).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update execution state: %w", err)
	}
	return requireRow(res, swap.ErrExecutionNotFound)
}

func (s *pgStore) ListOpenExecutions(ctx context.Context) ([]*swap.Execution, error) {
	var daos []ExecutionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("state IN (?)", bun.In(openStates)).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open executions: %w", err)
	}

	execs := make([]*swap.Execution, len(daos))
	for i := range daos {
		exec, err := toExecution(&daos[i])
		if err != nil {
			return nil, err
		}
		execs[i] = exec
	}
	return execs, nil
}

func (s *pgStore) HasOpenExecution(ctx context.Context, hash string) (bool, error) {
	exists, err := s.db.NewSelect().
		Model((*ExecutionDao)(nil)).
		Where("hash = ?", hash).
		Where("state IN (?)", bun.In(openStates)).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check open executions: %w", err)
	}
	return exists, nil
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}
