package swap

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
)

func testAsset() *Asset {
	return &Asset{
		Ticker:    testTicker,
		Network:   testDestNetwork,
		Address:   testDestToken.Hex(),
		Decimals:  6,
		Available: true,
	}
}

func TestExecutor_PrepareScalesAmount(t *testing.T) {
	var gotToken, gotTo common.Address
	var gotAmount *big.Int
	dest := &fakeDestination{
		SignTokenTransferFunc: func(_ context.Context, token, to common.Address, amount *big.Int) (*types.Transaction, error) {
			gotToken, gotTo, gotAmount = token, to, amount
			return types.NewTx(&types.LegacyTx{Nonce: 7, To: &token, Gas: 1, GasPrice: big.NewInt(1)}), nil
		},
	}
	exec := NewExecutor(dest, zap.NewNop())

	prepared, err := exec.Prepare(context.Background(), testAsset(), testUser, decimal.RequireFromString("12.34"))
	require.NoError(t, err)

	assert.Equal(t, testDestToken, gotToken)
	assert.Equal(t, testUser, gotTo)
	assert.Equal(t, "12340000", gotAmount.String())
	assert.Equal(t, uint64(7), prepared.Nonce())
	assert.Equal(t, testUser, prepared.Recipient)
	assert.Zero(t, dest.sentCount(), "prepare must not broadcast")
}

func TestExecutor_PrepareSignFailure(t *testing.T) {
	dest := &fakeDestination{
		SignTokenTransferFunc: func(context.Context, common.Address, common.Address, *big.Int) (*types.Transaction, error) {
			return nil, errors.New("nonce unavailable")
		},
	}
	exec := NewExecutor(dest, zap.NewNop())

	_, err := exec.Prepare(context.Background(), testAsset(), testUser, decimal.NewFromInt(1))

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.False(t, execErr.Broadcast)
	assert.Empty(t, execErr.SendTx)
}

func TestExecutor_Submit(t *testing.T) {
	tests := []struct {
		name          string
		sendErr       error
		waitErr       error
		succeeded     bool
		status        string
		wantErr       bool
		wantReverted  bool
		wantBroadcast bool
	}{
		{name: "confirmed", succeeded: true, status: "confirmed"},
		{name: "send failure", sendErr: errors.New("connection refused"), status: "send_failed", wantErr: true, wantBroadcast: true},
		{name: "wait failure", waitErr: context.DeadlineExceeded, status: "unconfirmed", wantErr: true, wantBroadcast: true},
		{name: "reverted", succeeded: false, status: "reverted", wantErr: true, wantReverted: true, wantBroadcast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := &fakeDestination{}
			if tt.sendErr != nil {
				dest.SendTransactionFunc = func(context.Context, *types.Transaction) error { return tt.sendErr }
			}
			dest.WaitMinedFunc = func(_ context.Context, tx *types.Transaction) (*ethereum.Receipt, error) {
				if tt.waitErr != nil {
					return nil, tt.waitErr
				}
				return &ethereum.Receipt{TxHash: tx.Hash(), BlockNumber: 3, Succeeded: tt.succeeded}, nil
			}
			exec := NewExecutor(dest, zap.NewNop())

			prepared, err := exec.Prepare(context.Background(), testAsset(), testUser, decimal.NewFromInt(1))
			require.NoError(t, err)

			counter := metrics.TransactionsSent.WithLabelValues(dest.Name(), tt.status)
			before := testutil.ToFloat64(counter)

			receipt, err := exec.Submit(context.Background(), prepared)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, prepared.Hash(), receipt.TxHash)
				return
			}

			var execErr *ExecutionError
			require.ErrorAs(t, err, &execErr)
			assert.Equal(t, prepared.Hash().Hex(), execErr.SendTx)
			assert.Equal(t, tt.wantBroadcast, execErr.Broadcast)
			assert.Equal(t, tt.wantReverted, execErr.Reverted)
			if tt.sendErr != nil {
				assert.ErrorIs(t, err, tt.sendErr)
			}
		})
	}
}
