package watcher

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/navette/internal/metrics"
	"github.com/chainsafe/navette/pkg/ethereum"
)

var (
	token    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	operator = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	someone  = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

type fakeSource struct {
	name string
	ws   bool

	LatestFunc func(ctx context.Context) (uint64, error)
	WatchFunc  func(ctx context.Context, token common.Address, sink chan<- *ethereum.TransferEvent) (event.Subscription, error)
	FilterFunc   func(ctx context.Context, token common.Address, from, to uint64) ([]*ethereum.TransferEvent, error)
	DecimalsFunc func(ctx context.Context, token common.Address) (uint8, error)
}

func (f *fakeSource) Name() string                { return f.name }
func (f *fakeSource) SupportsSubscriptions() bool { return f.ws }

func (f *fakeSource) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	return f.LatestFunc(ctx)
}

func (f *fakeSource) WatchTransfers(ctx context.Context, token common.Address, sink chan<- *ethereum.TransferEvent) (event.Subscription, error) {
	return f.WatchFunc(ctx, token, sink)
}

func (f *fakeSource) TokenDecimals(ctx context.Context, token common.Address) (uint8, error) {
	if f.DecimalsFunc != nil {
		return f.DecimalsFunc(ctx, token)
	}
	return 18, nil
}

func (f *fakeSource) FilterTransfers(ctx context.Context, token common.Address, from, to uint64) ([]*ethereum.TransferEvent, error) {
	return f.FilterFunc(ctx, token, from, to)
}

func testConfig() Config {
	return Config{
		Token:          token,
		Operator:       operator,
		PollInterval:   5 * time.Millisecond,
		LookbackBlocks: 10,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}
}

func transfer(to common.Address, block uint64) *ethereum.TransferEvent {
	return &ethereum.TransferEvent{
		Token:       token,
		From:        someone,
		To:          to,
		Value:       big.NewInt(1e18),
		BlockNumber: block,
	}
}

type blockRange struct{ from, to uint64 }

func TestWatcher_PollsNewBlocks(t *testing.T) {
	var height atomic.Uint64
	height.Store(100)

	var mu sync.Mutex
	var ranges []blockRange

	src := &fakeSource{
		name: "poll-chain",
		LatestFunc: func(context.Context) (uint64, error) {
			return height.Load(), nil
		},
		FilterFunc: func(_ context.Context, _ common.Address, from, to uint64) ([]*ethereum.TransferEvent, error) {
			mu.Lock()
			defer mu.Unlock()
			ranges = append(ranges, blockRange{from, to})
			if len(ranges) == 1 {
				return []*ethereum.TransferEvent{transfer(operator, 95), transfer(someone, 96)}, nil
			}
			return nil, nil
		},
	}

	w := New(testConfig(), src, zap.NewNop())
	w.Start(context.Background())

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(ranges) >= 1
	}, time.Second, time.Millisecond)

	height.Store(105)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(ranges) >= 2
	}, time.Second, time.Millisecond)
	w.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, blockRange{91, 100}, ranges[0])
	assert.Equal(t, blockRange{101, 105}, ranges[1])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EventsDetected.WithLabelValues("poll-chain", eventDeposit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EventsDetected.WithLabelValues("poll-chain", eventTransfer)))
	assert.Equal(t, 105.0, testutil.ToFloat64(metrics.LastProcessedBlock.WithLabelValues("poll-chain")))
}

func TestWatcher_PollErrorBacksOffAndResumes(t *testing.T) {
	var calls atomic.Int32
	src := &fakeSource{
		name: "flaky-chain",
		LatestFunc: func(context.Context) (uint64, error) {
			if calls.Add(1) <= 2 {
				return 0, errors.New("rpc unavailable")
			}
			return 50, nil
		},
		FilterFunc: func(context.Context, common.Address, uint64, uint64) ([]*ethereum.TransferEvent, error) {
			return nil, nil
		},
	}

	w := New(testConfig(), src, zap.NewNop())
	w.Start(context.Background())
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.LastProcessedBlock.WithLabelValues("flaky-chain")) == 50
	}, time.Second, time.Millisecond)
	w.Stop()

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.WatcherReconnects.WithLabelValues("flaky-chain")))
}

func TestWatcher_SubscriptionReconnects(t *testing.T) {
	var attempts atomic.Int32
	src := &fakeSource{
		name: "ws-chain",
		ws:   true,
		WatchFunc: func(_ context.Context, _ common.Address, sink chan<- *ethereum.TransferEvent) (event.Subscription, error) {
			switch attempts.Add(1) {
			case 1:
				return nil, errors.New("dial failed")
			case 2:
				return event.NewSubscription(func(<-chan struct{}) error {
					return errors.New("connection reset")
				}), nil
			default:
				return event.NewSubscription(func(quit <-chan struct{}) error {
					select {
					case sink <- transfer(operator, 7):
					case <-quit:
						return nil
					}
					<-quit
					return nil
				}), nil
			}
		},
	}

	w := New(testConfig(), src, zap.NewNop())
	w.Start(context.Background())
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.EventsDetected.WithLabelValues("ws-chain", eventDeposit)) == 1
	}, time.Second, time.Millisecond)
	w.Stop()

	assert.Equal(t, int32(3), attempts.Load())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.WatcherReconnects.WithLabelValues("ws-chain")))
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.LastProcessedBlock.WithLabelValues("ws-chain")))
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	src := &fakeSource{
		name: "cancel-chain",
		LatestFunc: func(context.Context) (uint64, error) {
			return 0, errors.New("down")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := New(testConfig(), src, zap.NewNop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_PollChunksWideRanges(t *testing.T) {
	var mu sync.Mutex
	var ranges []blockRange
	var failed atomic.Bool

	src := &fakeSource{
		name: "chunk-chain",
		LatestFunc: func(context.Context) (uint64, error) {
			return 100, nil
		},
		FilterFunc: func(_ context.Context, _ common.Address, from, to uint64) ([]*ethereum.TransferEvent, error) {
			// the second chunk fails once
			if from == 95 && !failed.Swap(true) {
				return nil, errors.New("query returned more than 10000 results")
			}
			mu.Lock()
			defer mu.Unlock()
			ranges = append(ranges, blockRange{from, to})
			return nil, nil
		},
	}

	cfg := testConfig()
	cfg.MaxBlockRange = 4
	w := New(cfg, src, zap.NewNop())
	w.Start(context.Background())
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.LastProcessedBlock.WithLabelValues("chunk-chain")) == 100
	}, time.Second, time.Millisecond)
	w.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []blockRange{{91, 94}, {95, 98}, {99, 100}}, ranges)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WatcherReconnects.WithLabelValues("chunk-chain")))
}

func TestWatcher_LogsValueWithTokenDecimals(t *testing.T) {
	var decimalCalls atomic.Int32
	core, logs := observer.New(zapcore.InfoLevel)

	src := &fakeSource{
		name: "usdc-chain",
		DecimalsFunc: func(context.Context, common.Address) (uint8, error) {
			if decimalCalls.Add(1) == 1 {
				return 0, errors.New("rpc unavailable")
			}
			return 6, nil
		},
		LatestFunc: func(context.Context) (uint64, error) {
			return 3, nil
		},
		FilterFunc: func(_ context.Context, _ common.Address, from, _ uint64) ([]*ethereum.TransferEvent, error) {
			if from != 1 {
				return nil, nil
			}
			ev := transfer(operator, 2)
			ev.Value = big.NewInt(2_500_000)
			return []*ethereum.TransferEvent{ev}, nil
		},
	}

	w := New(testConfig(), src, zap.New(core))
	w.Start(context.Background())
	require.Eventually(t, func() bool {
		return logs.FilterMessage("Transfer detected").Len() == 1
	}, time.Second, time.Millisecond)
	w.Stop()

	entry := logs.FilterMessage("Transfer detected").All()[0]
	assert.Equal(t, "2.5", entry.ContextMap()["value"])
	assert.Equal(t, eventDeposit, entry.ContextMap()["type"])
	assert.Equal(t, int32(2), decimalCalls.Load())
}
