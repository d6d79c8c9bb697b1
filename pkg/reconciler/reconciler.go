// Package reconciler resolves destination transfers whose outcome was not
// recorded inline and keeps the cached asset balances current.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/chainsafe/navette/pkg/swap"
)

const (
	runTimeout = 2 * time.Minute
	// an executing transfer unknown to the node is left alone this long, since
	// the service may not have broadcast it yet
	gracePeriod = 2 * time.Minute
)

// Destination is the chain the journaled transfers were sent on
type Destination interface {
	GetReceipt(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error)
	GetTransaction(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error)
	ConfirmedNonce(ctx context.Context) (uint64, error)
}

// Ledger is the swap state the reconciler repairs
type Ledger interface {
	OpenExecutions(ctx context.Context) ([]*swap.Execution, error)
	ResolveExecution(ctx context.Context, sendTx string, state swap.ExecutionState) error
	AddSwap(ctx context.Context, rec *swap.Record) (*swap.Record, error)
	UpdateAssetBalances(ctx context.Context, networks ...string) error
}

// Reconciler drives open executions to a terminal state. It never re-submits a transfer.
type Reconciler struct {
	ledger      Ledger
	destination Destination
	logger      *zap.Logger
	now         func() time.Time

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a new Reconciler
func New(ledger Ledger, destination Destination, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		ledger:      ledger,
		destination: destination,
		logger:      logger.With(zap.String("component", "reconciler")),
		now:         time.Now,
		stopCh:      make(chan struct{}),
	}
}

// ReconcileAll resolves open executions and then refreshes every asset balance.
// A failure to resolve one execution does not stop the others.
func (r *Reconciler) ReconcileAll(ctx context.Context) error {
	start := time.Now()

	resolveErr := r.ReconcileExecutions(ctx)
	balanceErr := r.ledger.UpdateAssetBalances(ctx)
	if balanceErr != nil {
		balanceErr = fmt.Errorf("failed to refresh asset balances: %w", balanceErr)
	}

	r.logger.Info("Reconciliation completed", zap.Duration("duration", time.Since(start)))
	return errors.Join(resolveErr, balanceErr)
}

// ReconcileExecutions inspects every executing or unresolved execution on the destination chain
func (r *Reconciler) ReconcileExecutions(ctx context.Context) error {
	execs, err := r.ledger.OpenExecutions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open executions: %w", err)
	}

	var (
		unresolved int
		nonce      *uint64
	)
	for _, exec := range execs {
		state, err := r.inspect(ctx, exec, &nonce)
		if err != nil {
			metrics.ErrorsTotal.WithLabelValues("reconciler", "inspect").Inc()
			r.logger.Warn("Failed to inspect execution",
				zap.String("hash", exec.Hash),
				zap.String("send_tx", exec.SendTx),
				zap.Error(err))
			if exec.State == swap.ExecutionUnresolved {
				unresolved++
			}
			continue
		}

		if state == swap.ExecutionUnresolved {
			unresolved++
			r.logger.Error("Destination transfer is unresolved; manual intervention required",
				zap.String("hash", exec.Hash),
				zap.String("send_tx", exec.SendTx),
				zap.Uint64("nonce", exec.Nonce))
		}
		if state == exec.State {
			continue
		}

		if err := r.ledger.ResolveExecution(ctx, exec.SendTx, state); err != nil {
			r.logger.Error("Failed to update execution", zap.String("send_tx", exec.SendTx), zap.Error(err))
			continue
		}
		r.logger.Info("Execution reconciled",
			zap.String("hash", exec.Hash),
			zap.String("send_tx", exec.SendTx),
			zap.String("from", string(exec.State)),
			zap.String("to", string(state)))
	}

	metrics.UnresolvedExecutions.Set(float64(unresolved))
	return nil
}

// inspect decides the state an execution should be in. nonce caches the
// operator's confirmed nonce for the run.
func (r *Reconciler) inspect(ctx context.Context, exec *swap.Execution, nonce **uint64) (swap.ExecutionState, error) {
	hash := common.HexToHash(exec.SendTx)

	receipt, err := r.destination.GetReceipt(ctx, hash)
	switch {
	case err == nil:
		if !receipt.Succeeded {
			return swap.ExecutionFailed, nil
		}
		if err := r.recordSwap(ctx, exec); err != nil {
			return "", err
		}
		return swap.ExecutionConfirmed, nil
	case !errors.Is(err, ethereum.ErrNotFound):
		return "", fmt.Errorf("failed to get receipt: %w", err)
	}

	_, err = r.destination.GetTransaction(ctx, hash)
	switch {
	case err == nil:
		// known to the node but not mined yet
		return exec.State, nil
	case !errors.Is(err, ethereum.ErrNotFound):
		return "", fmt.Errorf("failed to get transaction: %w", err)
	}

	if *nonce == nil {
		n, err := r.destination.ConfirmedNonce(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get confirmed nonce: %w", err)
		}
		*nonce = &n
	}
	if **nonce > exec.Nonce {
		// the nonce was consumed by another transaction, so this one can never be mined
		return swap.ExecutionFailed, nil
	}

	if exec.State == swap.ExecutionExecuting && r.now().Sub(exec.CreatedAt) < gracePeriod {
		return exec.State, nil
	}
	return swap.ExecutionUnresolved, nil
}

func (r *Reconciler) recordSwap(ctx context.Context, exec *swap.Execution) error {
	if exec.Record == nil {
		return fmt.Errorf("execution %s carries no swap record", exec.SendTx)
	}
	_, err := r.ledger.AddSwap(ctx, exec.Record)
	if err != nil && !errors.Is(err, swap.ErrSwapExists) {
		return fmt.Errorf("failed to record swap %s: %w", exec.Hash, err)
	}
	return nil
}

// StartPeriodicReconciliation runs ReconcileAll now and then every interval until Stop
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic reconciliation", zap.Duration("interval", interval))
		r.runOnce()

		for {
			select {
			case <-ticker.C:
				r.runOnce()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic reconciliation")
				return
			}
		}
	}()
}

func (r *Reconciler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	if err := r.ReconcileAll(ctx); err != nil {
		r.logger.Error("Periodic reconciliation failed", zap.Error(err))
	}
}

// Stop stops the periodic reconciliation
func (r *Reconciler) Stop() {
	close(r.stopCh)
	r.wg.Wait()
}
