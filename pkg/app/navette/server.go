// Package navette implements app.Runner for the swap engine process.
package navette

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/navette/pkg/app/http"
	"github.com/chainsafe/navette/pkg/config"
	"github.com/chainsafe/navette/pkg/ethereum"
	"github.com/chainsafe/navette/pkg/pgutil"
	"github.com/chainsafe/navette/pkg/reconciler"
	"github.com/chainsafe/navette/pkg/swap"
	"github.com/chainsafe/navette/pkg/swapstore"
	"github.com/chainsafe/navette/pkg/watcher"
)

const readyTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds configuration for the swap engine process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new swap engine Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run wires the engine, starts the background workers and serves HTTP.
// It blocks until an OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting swap engine",
		zap.String("source", cfg.Source.Name),
		zap.String("destination", cfg.Destination.Name))

	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	store := swapstore.NewStore(db)

	source, err := ethereum.NewClient(ctx, &cfg.Source, cfg.Operator.PrivateKey, logger)
	if err != nil {
		return fmt.Errorf("initialize source client: %w", err)
	}
	defer source.Close()

	destination, err := ethereum.NewClient(ctx, &cfg.Destination, cfg.Operator.PrivateKey, logger)
	if err != nil {
		return fmt.Errorf("initialize destination client: %w", err)
	}
	defer destination.Close()

	readers := map[string]swap.BalanceReader{
		cfg.Source.Name:      source,
		cfg.Destination.Name: destination,
	}
	ledger := swap.NewLedger(store, readers, destination.Address(), logger)
	if err := ledger.Seed(ctx, seedAssets(cfg.Assets)); err != nil {
		return err
	}

	svc := swap.NewService(
		swapConfig(cfg, destination.Address()),
		source,
		swap.NewExecutor(destination, logger),
		ledger,
		logger,
	)

	// The first run resolves anything left open by a previous process before requests arrive.
	rec := reconciler.New(ledger, destination, logger)
	rec.StartPeriodicReconciliation(cfg.Reconciliation.Interval)
	defer rec.Stop()

	if cfg.Watcher.Enabled {
		w := watcher.New(watcherConfig(cfg, destination.Address()), source, logger)
		w.Start(ctx)
		defer w.Stop()
	}

	router := newRouter(cfg, store, swap.NewLog(svc, logger), logger)
	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	logger.Info("Waiting for background swap work")
	svc.Wait()
	return err
}

func newRouter(cfg *config.Config, db Pinger, svc swap.Service, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			logger.Warn("Readiness check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	swap.RegisterRoutes(r, svc, logger)
	return r
}

func swapConfig(cfg *config.Config, operator common.Address) swap.Config {
	return swap.Config{
		SourceNetwork:         cfg.Source.Name,
		DestinationNetwork:    cfg.Destination.Name,
		SourceTicker:          cfg.Swap.SourceTicker,
		DestinationTicker:     cfg.Swap.DestinationTicker,
		SourceToken:           common.HexToAddress(cfg.Source.TokenContract),
		Operator:              operator,
		RequiredConfirmations: cfg.Swap.RequiredConfirmations,
		PollInterval:          cfg.Swap.PollInterval,
		ConfirmationTimeout:   cfg.Swap.ConfirmationTimeout,
	}
}

func watcherConfig(cfg *config.Config, operator common.Address) watcher.Config {
	return watcher.Config{
		Token:          common.HexToAddress(cfg.Source.TokenContract),
		Operator:       operator,
		PollInterval:   cfg.Watcher.PollInterval,
		LookbackBlocks: cfg.Watcher.LookbackBlocks,
		MaxBlockRange:  cfg.Watcher.MaxBlockRange,
		InitialBackoff: cfg.Watcher.InitialBackoff,
		MaxBackoff:     cfg.Watcher.MaxBackoff,
	}
}

func seedAssets(assets []config.AssetConfig) []*swap.Asset {
	out := make([]*swap.Asset, 0, len(assets))
	for _, a := range assets {
		out = append(out, &swap.Asset{
			Ticker:    a.Ticker,
			Network:   a.Network,
			Address:   common.HexToAddress(a.Address).Hex(),
			Decimals:  a.Decimals,
			Available: a.IsAvailable(),
		})
	}
	return out
}
