package swapstore

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/navette/pkg/swap"
)

// SwapDao maps to the 'swaps' table. The id column fixes insertion order.
type SwapDao struct {
	bun.BaseModel             `bun:"table:swaps,alias:s"`
	ID                        int64     `bun:"id,pk,autoincrement"`
	Hash                      string    `bun:"hash,unique,notnull,type:varchar(66)"`
	Executed                  bool      `bun:"executed,notnull"`
	UserAddress               string    `bun:"user_address,notnull,type:varchar(42)"`
	Operator                  string    `bun:"operator,notnull,type:varchar(42)"`
	BlockNumber               int64     `bun:"block_number,notnull"`
	IsERC20                   bool      `bun:"is_erc20,notnull"`
	TokenAddressOnSource      *string   `bun:"token_address_on_source,type:varchar(42)"`
	TokenAddressOnDestination *string   `bun:"token_address_on_destination,type:varchar(42)"`
	Amount                    *string   `bun:"amount,type:numeric"`
	SendTx                    *string   `bun:"send_tx,unique,type:varchar(66)"`
	RejectReason              *string   `bun:"reject_reason,type:varchar(64)"`
	CreatedAt                 time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// AssetDao maps to the 'assets' table, keyed by (ticker, network).
type AssetDao struct {
	bun.BaseModel  `bun:"table:assets,alias:a"`
	Ticker         string    `bun:"ticker,pk,type:varchar(32)"`
	Network        string    `bun:"network,pk,type:varchar(64)"`
	Address        string    `bun:"address,notnull,type:varchar(42)"`
	Decimals       int16     `bun:"decimals,notnull"`
	CurrentBalance *string   `bun:"current_balance,type:numeric"`
	Available      bool      `bun:"available,notnull"`
	UpdatedAt      time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ExecutionDao maps to the 'swap_executions' journal.
type ExecutionDao struct {
	bun.BaseModel `bun:"table:swap_executions,alias:e"`
	SendTx        string       `bun:"send_tx,pk,type:varchar(66)"`
	Hash          string       `bun:"hash,notnull,type:varchar(66)"`
	Nonce         int64        `bun:"nonce,notnull"`
	Recipient     string       `bun:"recipient,notnull,type:varchar(42)"`
	Amount        string       `bun:"amount,notnull,type:numeric"`
	State         string       `bun:"state,notnull,type:varchar(16)"`
	Record        *swap.Record `bun:"record,type:jsonb"`
	CreatedAt     time.Time    `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time    `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toSwapDao(rec *swap.Record) *SwapDao {
	dao := &SwapDao{
		Hash:                      rec.Hash,
		Executed:                  rec.Executed,
		UserAddress:               rec.User,
		Operator:                  rec.Operator,
		BlockNumber:               int64(rec.BlockNumber),
		IsERC20:                   rec.IsERC20,
		TokenAddressOnSource:      rec.TokenAddressOnSource,
		TokenAddressOnDestination: rec.TokenAddressOnDestination,
		SendTx:                    rec.SendTx,
	}
	if rec.Amount != nil {
		amount := rec.Amount.String()
		dao.Amount = &amount
	}
	if rec.RejectReason != nil {
		reason := string(*rec.RejectReason)
		dao.RejectReason = &reason
	}
	return dao
}

func toRecord(dao *SwapDao) (*swap.Record, error) {
	rec := &swap.Record{
		Hash:                      dao.Hash,
		Executed:                  dao.Executed,
		User:                      dao.UserAddress,
		Operator:                  dao.Operator,
		BlockNumber:               uint64(dao.BlockNumber),
		IsERC20:                   dao.IsERC20,
		TokenAddressOnSource:      dao.TokenAddressOnSource,
		TokenAddressOnDestination: dao.TokenAddressOnDestination,
		SendTx:                    dao.SendTx,
		CreatedAt:                 dao.CreatedAt,
	}
	if dao.Amount != nil {
		amount, err := decimal.NewFromString(*dao.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for swap %s: %w", dao.Hash, err)
		}
		rec.Amount = &amount
	}
	if dao.RejectReason != nil {
		reason := swap.RejectReason(*dao.RejectReason)
		rec.RejectReason = &reason
	}
	return rec, nil
}

func toAssetDao(asset *swap.Asset) *AssetDao {
	dao := &AssetDao{
		Ticker:    asset.Ticker,
		Network:   asset.Network,
		Address:   asset.Address,
		Decimals:  int16(asset.Decimals),
		Available: asset.Available,
	}
	if asset.CurrentBalance != nil {
		balance := asset.CurrentBalance.String()
		dao.CurrentBalance = &balance
	}
	return dao
}

func toAsset(dao *AssetDao) (*swap.Asset, error) {
	asset := &swap.Asset{
		Ticker:    dao.Ticker,
		Network:   dao.Network,
		Address:   dao.Address,
		Decimals:  uint8(dao.Decimals),
		Available: dao.Available,
		UpdatedAt: dao.UpdatedAt,
	}
	if dao.CurrentBalance != nil {
		balance, err := decimal.NewFromString(*dao.CurrentBalance)
		if err != nil {
			return nil, fmt.Errorf("invalid balance for %s/%s: %w", dao.Network, dao.Ticker, err)
		}
		asset.CurrentBalance = &balance
	}
	return asset, nil
}

func toExecutionDao(exec *swap.Execution) *ExecutionDao {
	return &ExecutionDao{
		SendTx:    exec.SendTx,
		Hash:      exec.Hash,
		Nonce:     int64(exec.Nonce),
		Recipient: exec.Recipient,
		Amount:    exec.Amount.String(),
		State:     string(exec.State),
		Record:    exec.Record,
	}
}

func toExecution(dao *ExecutionDao) (*swap.Execution, error) {
	amount, err := decimal.NewFromString(dao.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount for execution %s: %w", dao.SendTx, err)
	}
	return &swap.Execution{
		Hash:      dao.Hash,
		SendTx:    dao.SendTx,
		Nonce:     uint64(dao.Nonce),
		Recipient: dao.Recipient,
		Amount:    amount,
		State:     swap.ExecutionState(dao.State),
		Record:    dao.Record,
		CreatedAt: dao.CreatedAt,
		UpdatedAt: dao.UpdatedAt,
	}, nil
}
