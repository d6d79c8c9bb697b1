// Package watcher observes Transfer events of the source token. It only
// reports what it sees; swaps are never triggered from here.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
)

const (
	eventTransfer = "transfer"
	eventDeposit  = "deposit"

	sinkSize = 64

	// most providers refuse eth_getLogs spans much wider than this
	defaultMaxBlockRange = 2000
)

var errSubscriptionClosed = errors.New("subscription closed")

// Source is the chain the watcher observes
type Source interface {
	Name() string
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	SupportsSubscriptions() bool
	TokenDecimals(ctx context.Context, token common.Address) (uint8, error)
	WatchTransfers(ctx context.Context, token common.Address, sink chan<- *ethereum.TransferEvent) (event.Subscription, error)
	FilterTransfers(ctx context.Context, token common.Address, fromBlock, toBlock uint64) ([]*ethereum.TransferEvent, error)
}

// Config holds the watcher settings
type Config struct {
	Token          common.Address
	Operator       common.Address
	PollInterval   time.Duration
	LookbackBlocks uint64
	MaxBlockRange  uint64
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Watcher keeps a transfer subscription alive and reconnects with exponential backoff
type Watcher struct {
	cfg    Config
	source Source
	logger *zap.Logger

	backoff   *backoff.ExponentialBackOff
	nextBlock uint64
	decimals  *uint8

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a new Watcher
func New(cfg Config, source Source, logger *zap.Logger) *Watcher {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialBackoff
	bo.MaxInterval = cfg.MaxBackoff
	bo.MaxElapsedTime = 0

	if cfg.MaxBlockRange == 0 {
		cfg.MaxBlockRange = defaultMaxBlockRange
	}

	return &Watcher{
		cfg:     cfg,
		source:  source,
		logger:  logger.With(zap.String("component", "watcher"), zap.String("chain", source.Name())),
		backoff: bo,
		stopCh:  make(chan struct{}),
	}
}

// Start runs the watcher in the background until Stop is called or ctx is done
func (w *Watcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()
		select {
		case <-w.stopCh:
		case <-ctx.Done():
		}
	}()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()

	w.logger.Info("Deposit watcher started",
		zap.String("token", w.cfg.Token.Hex()),
		zap.Bool("subscription", w.source.SupportsSubscriptions()))
}

// Stop stops the watcher and waits for it to exit
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.logger.Info("Deposit watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	notify := func(err error, delay time.Duration) {
		metrics.WatcherReconnects.WithLabelValues(w.source.Name()).Inc()
		w.logger.Warn("Transfer watch interrupted, reconnecting",
			zap.Error(err),
			zap.Duration("backoff", delay))
	}

	err := backoff.RetryNotify(func() error {
		return w.session(ctx)
	}, backoff.WithContext(w.backoff, ctx), notify)
	if err != nil && ctx.Err() == nil {
		w.logger.Error("Deposit watcher gave up", zap.Error(err))
	}
}

// session watches until the connection fails. It returns nil only when ctx is done.
func (w *Watcher) session(ctx context.Context) error {
	if w.decimals == nil {
		decimals, err := w.source.TokenDecimals(ctx, w.cfg.Token)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to read token decimals: %w", err)
		}
		w.decimals = &decimals
	}

	if w.source.SupportsSubscriptions() {
		return w.subscribe(ctx)
	}
	return w.poll(ctx)
}

func (w *Watcher) subscribe(ctx context.Context) error {
	sink := make(chan *ethereum.TransferEvent, sinkSize)
	sub, err := w.source.WatchTransfers(ctx, w.cfg.Token, sink)
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-sink:
			w.backoff.Reset()
			w.handle(ev)
		case err, ok := <-sub.Err():
			if ctx.Err() != nil {
				return nil
			}
			if !ok || err == nil {
				return errSubscriptionClosed
			}
			return err
		}
	}
}

func (w *Watcher) poll(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := w.pollOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		w.backoff.Reset()

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *Watcher) pollOnce(ctx context.Context) error {
	latest, err := w.source.GetLatestBlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("failed to get latest block: %w", err)
	}

	if w.nextBlock == 0 {
		w.nextBlock = latest + 1
		if w.cfg.LookbackBlocks > 0 {
			if latest >= w.cfg.LookbackBlocks {
				w.nextBlock = latest - w.cfg.LookbackBlocks + 1
			} else {
				w.nextBlock = 1
			}
		}
	}

	// progress is kept per chunk so a failure resumes where it stopped
	for w.nextBlock <= latest {
		to := min(latest, w.nextBlock+w.cfg.MaxBlockRange-1)
		events, err := w.source.FilterTransfers(ctx, w.cfg.Token, w.nextBlock, to)
		if err != nil {
			return err
		}
		for _, ev := range events {
			w.handle(ev)
		}

		w.nextBlock = to + 1
		metrics.LastProcessedBlock.WithLabelValues(w.source.Name()).Set(float64(to))
	}
	return nil
}

func (w *Watcher) handle(ev *ethereum.TransferEvent) {
	eventType := eventTransfer
	if ev.To == w.cfg.Operator {
		eventType = eventDeposit
	}
	metrics.EventsDetected.WithLabelValues(w.source.Name(), eventType).Inc()
	metrics.LastProcessedBlock.WithLabelValues(w.source.Name()).Set(float64(ev.BlockNumber))

	value := ethereum.ToDecimal(ev.Value, *w.decimals).String()
	w.logger.Info("Transfer detected",
		zap.String("type", eventType),
		zap.String("from", ev.From.Hex()),
		zap.String("to", ev.To.Hex()),
		zap.String("value", value),
		zap.Uint64("block", ev.BlockNumber),
		zap.String("tx_hash", ev.TxHash.Hex()))
}
