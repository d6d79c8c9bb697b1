package swap

import (
	"context"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/navette/pkg/ethereum"
)

// fakeSource is a Func-field implementation of SourceChain
type fakeSource struct {
	GetTransactionFunc       func(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error)
	GetReceiptFunc           func(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error)
	GetLatestBlockNumberFunc func(ctx context.Context) (uint64, error)
	TokenDecimalsFunc        func(ctx context.Context, token common.Address) (uint8, error)
}

func (f *fakeSource) GetTransaction(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error) {
	if f.GetTransactionFunc != nil {
		return f.GetTransactionFunc(ctx, hash)
	}
	return nil, ethereum.ErrNotFound
}

func (f *fakeSource) GetReceipt(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error) {
	if f.GetReceiptFunc != nil {
		return f.GetReceiptFunc(ctx, hash)
	}
	return nil, ethereum.ErrNotFound
}

func (f *fakeSource) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	if f.GetLatestBlockNumberFunc != nil {
		return f.GetLatestBlockNumberFunc(ctx)
	}
	return 0, nil
}

func (f *fakeSource) TokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	if f.TokenDecimalsFunc != nil {
		return f.TokenDecimalsFunc(ctx, token)
	}
	return 18, nil
}

// fakeDestination is a Func-field implementation of DestinationChain
type fakeDestination struct {
	SignTokenTransferFunc func(ctx context.Context, token, to common.Address, amount *big.Int) (*types.Transaction, error)
	SendTransactionFunc   func(ctx context.Context, tx *types.Transaction) error
	WaitMinedFunc         func(ctx context.Context, tx *types.Transaction) (*ethereum.Receipt, error)

	mu     sync.Mutex
	nonce  uint64
	sent   []*types.Transaction
	amount []*big.Int
}

func (f *fakeDestination) Name() string { return "OP Sepolia" }

func (f *fakeDestination) SignTokenTransfer(ctx context.Context, token, to common.Address, amount *big.Int) (*types.Transaction, error) {
	if f.SignTokenTransferFunc != nil {
		return f.SignTokenTransferFunc(ctx, token, to, amount)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    f.nonce,
		To:       &token,
		Gas:      100000,
		GasPrice: big.NewInt(1),
		Data:     append(to.Bytes(), amount.Bytes()...),
	})
	f.nonce++
	f.amount = append(f.amount, amount)
	return tx, nil
}

func (f *fakeDestination) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.SendTransactionFunc != nil {
		return f.SendTransactionFunc(ctx, tx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeDestination) WaitMined(ctx context.Context, tx *types.Transaction) (*ethereum.Receipt, error) {
	if f.WaitMinedFunc != nil {
		return f.WaitMinedFunc(ctx, tx)
	}
	return &ethereum.Receipt{TxHash: tx.Hash(), BlockNumber: 1, Succeeded: true}, nil
}

func (f *fakeDestination) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// fakeBalances is a Func-field implementation of BalanceReader
type fakeBalances struct {
	TokenBalanceFunc func(ctx context.Context, token, owner common.Address) (*big.Int, error)
}

func (f *fakeBalances) TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	if f.TokenBalanceFunc != nil {
		return f.TokenBalanceFunc(ctx, token, owner)
	}
	return big.NewInt(0), nil
}

// memStore is an in-memory Store
type memStore struct {
	mu         sync.Mutex
	swaps      []*Record
	assets     map[string]*Asset
	executions []*Execution

	AddSwapErr error
}

func newMemStore() *memStore {
	return &memStore{assets: make(map[string]*Asset)}
}

func assetKey(network, ticker string) string {
	return network + "/" + ticker
}

func (m *memStore) AddSwap(_ context.Context, rec *Record) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddSwapErr != nil {
		return nil, m.AddSwapErr
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	for _, r := range m.swaps {
		if r.Hash == rec.Hash {
			return nil, ErrSwapExists
		}
	}
	stored := *rec
	stored.CreatedAt = time.Now()
	m.swaps = append(m.swaps, &stored)
	return &stored, nil
}

func (m *memStore) GetSwap(_ context.Context, hash string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.swaps {
		if r.Hash == hash {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memStore) ListSwaps(context.Context) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Record, len(m.swaps))
	copy(out, m.swaps)
	return out, nil
}

func (m *memStore) SeedAssets(_ context.Context, assets []*Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range assets {
		key := assetKey(a.Network, a.Ticker)
		if _, ok := m.assets[key]; ok {
			continue
		}
		cp := *a
		m.assets[key] = &cp
	}
	return nil
}

func (m *memStore) GetAsset(_ context.Context, network, ticker string) (*Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[assetKey(network, ticker)]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) ListAssets(_ context.Context, networks ...string) ([]*Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Asset
	for _, a := range m.assets {
		if len(networks) > 0 && !contains(networks, a.Network) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return assetKey(out[i].Network, out[i].Ticker) < assetKey(out[j].Network, out[j].Ticker)
	})
	return out, nil
}

func (m *memStore) UpdateAssetBalance(_ context.Context, network, ticker string, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[assetKey(network, ticker)]
	if !ok {
		return ErrAssetNotFound
	}
	a.CurrentBalance = &balance
	return nil
}

func (m *memStore) SetAssetAvailability(_ context.Context, network, ticker string, available bool) (*Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[assetKey(network, ticker)]
	if !ok {
		return nil, ErrAssetNotFound
	}
	a.Available = available
	cp := *a
	return &cp, nil
}

func (m *memStore) CreateExecution(_ context.Context, exec *Execution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *exec
	m.executions = append(m.executions, &cp)
	return nil
}

func (m *memStore) UpdateExecutionState(_ context.Context, sendTx string, state ExecutionState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.executions {
		if e.SendTx == sendTx {
			e.State = state
			return nil
		}
	}
	return ErrExecutionNotFound
}

func (m *memStore) ListOpenExecutions(context.Context) ([]*Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Execution
	for _, e := range m.executions {
		if e.State.IsOpen() {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) HasOpenExecution(_ context.Context, hash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.executions {
		if e.Hash == hash && e.State.IsOpen() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) executionStates() []ExecutionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ExecutionState, 0, len(m.executions))
	for _, e := range m.executions {
		out = append(out, e.State)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
