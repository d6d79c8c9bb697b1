package reconciler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/chainsafe/navette/pkg/swap"
)

type fakeDestination struct {
	ReceiptFunc func(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error)
	TxFunc      func(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error)
	NonceFunc   func(ctx context.Context) (uint64, error)

	nonceCalls atomic.Int32
}

func (f *fakeDestination) GetReceipt(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error) {
	if f.ReceiptFunc == nil {
		return nil, ethereum.ErrNotFound
	}
	return f.ReceiptFunc(ctx, hash)
}

func (f *fakeDestination) GetTransaction(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error) {
	if f.TxFunc == nil {
		return nil, ethereum.ErrNotFound
	}
	return f.TxFunc(ctx, hash)
}

func (f *fakeDestination) ConfirmedNonce(ctx context.Context) (uint64, error) {
	f.nonceCalls.Add(1)
	if f.NonceFunc == nil {
		return 0, nil
	}
	return f.NonceFunc(ctx)
}

type fakeLedger struct {
	mu sync.Mutex

	execs     []*swap.Execution
	resolved  map[string]swap.ExecutionState
	added     []*swap.Record
	refreshes int

	OpenErr    error
	AddSwapErr error
	RefreshErr error
}

func (f *fakeLedger) OpenExecutions(context.Context) ([]*swap.Execution, error) {
	if f.OpenErr != nil {
		return nil, f.OpenErr
	}
	return f.execs, nil
}

func (f *fakeLedger) ResolveExecution(_ context.Context, sendTx string, state swap.ExecutionState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved == nil {
		f.resolved = make(map[string]swap.ExecutionState)
	}
	f.resolved[sendTx] = state
	return nil
}

func (f *fakeLedger) AddSwap(_ context.Context, rec *swap.Record) (*swap.Record, error) {
	if f.AddSwapErr != nil {
		return nil, f.AddSwapErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, rec)
	return rec, nil
}

func (f *fakeLedger) UpdateAssetBalances(context.Context, ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return f.RefreshErr
}

func (f *fakeLedger) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func execution(sendTx string, nonce uint64, state swap.ExecutionState, age time.Duration) *swap.Execution {
	send := sendTx
	return &swap.Execution{
		Hash:      "0x" + sendTx[4:],
		SendTx:    sendTx,
		Nonce:     nonce,
		Recipient: "0x0000000000000000000000000000000000000abc",
		Amount:    decimal.NewFromInt(1),
		State:     state,
		CreatedAt: fixedNow.Add(-age),
		Record: &swap.Record{
			Hash:     "0x" + sendTx[4:],
			Executed: true,
			SendTx:   &send,
		},
	}
}

func newReconciler(ledger Ledger, dest Destination) *Reconciler {
	r := New(ledger, dest, zap.NewNop())
	r.now = func() time.Time { return fixedNow }
	return r
}

const (
	tx1 = "0x1111111111111111111111111111111111111111111111111111111111111111"
	tx2 = "0x2222222222222222222222222222222222222222222222222222222222222222"
	tx3 = "0x3333333333333333333333333333333333333333333333333333333333333333"
)

func TestReconcileExecutions_Policy(t *testing.T) {
	tests := []struct {
		name      string
		exec      *swap.Execution
		dest      *fakeDestination
		addErr    error
		wantState swap.ExecutionState // empty: left as is
		wantAdded bool
	}{
		{
			name: "mined and succeeded writes the record",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Hour),
			dest: &fakeDestination{ReceiptFunc: func(context.Context, common.Hash) (*ethereum.Receipt, error) {
				return &ethereum.Receipt{Succeeded: true, BlockNumber: 9}, nil
			}},
			wantState: swap.ExecutionConfirmed,
			wantAdded: true,
		},
		{
			name: "record already present",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Hour),
			dest: &fakeDestination{ReceiptFunc: func(context.Context, common.Hash) (*ethereum.Receipt, error) {
				return &ethereum.Receipt{Succeeded: true}, nil
			}},
			addErr:    swap.ErrSwapExists,
			wantState: swap.ExecutionConfirmed,
		},
		{
			name: "reverted",
			exec: execution(tx1, 3, swap.ExecutionUnresolved, time.Hour),
			dest: &fakeDestination{ReceiptFunc: func(context.Context, common.Hash) (*ethereum.Receipt, error) {
				return &ethereum.Receipt{Succeeded: false}, nil
			}},
			wantState: swap.ExecutionFailed,
		},
		{
			name: "pending in mempool",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Hour),
			dest: &fakeDestination{TxFunc: func(context.Context, common.Hash) (*ethereum.Transaction, error) {
				return &ethereum.Transaction{Pending: true}, nil
			}},
		},
		{
			name: "unknown and nonce consumed",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Hour),
			dest: &fakeDestination{NonceFunc: func(context.Context) (uint64, error) {
				return 4, nil
			}},
			wantState: swap.ExecutionFailed,
		},
		{
			name: "unknown and nonce free",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Hour),
			dest: &fakeDestination{NonceFunc: func(context.Context) (uint64, error) {
				return 3, nil
			}},
			wantState: swap.ExecutionUnresolved,
		},
		{
			name: "unknown but within grace period",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Second),
			dest: &fakeDestination{NonceFunc: func(context.Context) (uint64, error) {
				return 3, nil
			}},
		},
		{
			name: "receipt lookup fails",
			exec: execution(tx1, 3, swap.ExecutionExecuting, time.Hour),
			dest: &fakeDestination{ReceiptFunc: func(context.Context, common.Hash) (*ethereum.Receipt, error) {
				return nil, errors.New("rpc down")
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &fakeLedger{execs: []*swap.Execution{tt.exec}, AddSwapErr: tt.addErr}
			r := newReconciler(ledger, tt.dest)

			require.NoError(t, r.ReconcileExecutions(context.Background()))

			state, changed := ledger.resolved[tt.exec.SendTx]
			if tt.wantState == "" {
				assert.False(t, changed, "execution should be left as is, got %s", state)
			} else {
				assert.Equal(t, tt.wantState, state)
			}
			if tt.wantAdded {
				require.Len(t, ledger.added, 1)
				assert.Same(t, tt.exec.Record, ledger.added[0])
			} else {
				assert.Empty(t, ledger.added)
			}
		})
	}
}

func TestReconcileExecutions_UnresolvedGauge(t *testing.T) {
	ledger := &fakeLedger{execs: []*swap.Execution{
		execution(tx1, 5, swap.ExecutionUnresolved, time.Hour),
		execution(tx2, 6, swap.ExecutionExecuting, time.Hour),
		execution(tx3, 2, swap.ExecutionExecuting, time.Hour),
	}}
	dest := &fakeDestination{NonceFunc: func(context.Context) (uint64, error) {
		return 5, nil
	}}

	r := newReconciler(ledger, dest)
	require.NoError(t, r.ReconcileExecutions(context.Background()))

	// tx1 stays unresolved without a write, tx2 becomes unresolved, tx3's nonce is spent
	assert.NotContains(t, ledger.resolved, tx1)
	assert.Equal(t, swap.ExecutionUnresolved, ledger.resolved[tx2])
	assert.Equal(t, swap.ExecutionFailed, ledger.resolved[tx3])
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.UnresolvedExecutions))
	assert.Equal(t, int32(1), dest.nonceCalls.Load(), "nonce is read once per run")
}

func TestReconcileExecutions_MissingRecordIsNotConfirmed(t *testing.T) {
	exec := execution(tx1, 1, swap.ExecutionExecuting, time.Hour)
	exec.Record = nil
	ledger := &fakeLedger{execs: []*swap.Execution{exec}}
	dest := &fakeDestination{ReceiptFunc: func(context.Context, common.Hash) (*ethereum.Receipt, error) {
		return &ethereum.Receipt{Succeeded: true}, nil
	}}

	require.NoError(t, newReconciler(ledger, dest).ReconcileExecutions(context.Background()))
	assert.Empty(t, ledger.resolved)
}

func TestReconcileAll_RefreshesBalancesEvenWhenJournalFails(t *testing.T) {
	ledger := &fakeLedger{OpenErr: errors.New("db down")}
	r := newReconciler(ledger, &fakeDestination{})

	err := r.ReconcileAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, 1, ledger.refreshCount())
}

func TestReconcileAll_BalanceFailure(t *testing.T) {
	ledger := &fakeLedger{RefreshErr: errors.New("store unavailable")}
	err := newReconciler(ledger, &fakeDestination{}).ReconcileAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to refresh asset balances")
}

func TestStartPeriodicReconciliation_RunsImmediately(t *testing.T) {
	ledger := &fakeLedger{}
	r := newReconciler(ledger, &fakeDestination{})

	r.StartPeriodicReconciliation(time.Hour)
	require.Eventually(t, func() bool {
		return ledger.refreshCount() == 1
	}, time.Second, time.Millisecond)
	r.Stop()
}
