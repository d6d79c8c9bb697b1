package swap

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const serviceName = "SwapService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the swap Service.
// Each call is tagged with a fresh call_id so interleaved swaps can be told apart.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) call(method string) *zap.Logger {
	return ls.logger.With(
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("call_id", uuid.NewString()),
	)
}

// ExecuteSwap wraps the service method with logging
func (ls *logService) ExecuteSwap(ctx context.Context, hash string) (out *Outcome, err error) {
	start := time.Now()
	log := ls.call("ExecuteSwap").With(zap.String("hash", hash))
	log.Info("ExecuteSwap started")

	defer func() {
		duration := time.Since(start)

		if err != nil {
			log.Error("ExecuteSwap failed", zap.Duration("duration", duration), zap.Error(err))
			return
		}

		fields := []zap.Field{
			zap.String("status", string(out.Status)),
			zap.Duration("duration", duration),
		}
		if out.Reason != "" {
			fields = append(fields, zap.String("reason", string(out.Reason)))
		}
		if out.Record != nil && out.Record.SendTx != nil {
			fields = append(fields, zap.String("send_tx", *out.Record.SendTx))
		}
		log.Info("ExecuteSwap completed", fields...)
	}()

	return ls.svc.ExecuteSwap(ctx, hash)
}

// ListSwaps wraps the service method with logging
func (ls *logService) ListSwaps(ctx context.Context) (records []*Record, err error) {
	start := time.Now()
	defer func() {
		log := ls.call("ListSwaps")
		if err != nil {
			log.Error("ListSwaps failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
			return
		}
		log.Debug("ListSwaps completed",
			zap.Int("count", len(records)),
			zap.Duration("duration", time.Since(start)))
	}()

	return ls.svc.ListSwaps(ctx)
}

// GetAssetBalance wraps the service method with logging
func (ls *logService) GetAssetBalance(ctx context.Context, network, ticker string) (balance *decimal.Decimal, err error) {
	start := time.Now()
	defer func() {
		log := ls.call("GetAssetBalance").With(zap.String("network", network), zap.String("ticker", ticker))
		if err != nil {
			log.Error("GetAssetBalance failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
			return
		}
		log.Debug("GetAssetBalance completed",
			zap.Bool("known", balance != nil),
			zap.Duration("duration", time.Since(start)))
	}()

	return ls.svc.GetAssetBalance(ctx, network, ticker)
}

// ListAssets wraps the service method with logging
func (ls *logService) ListAssets(ctx context.Context) (assets []*Asset, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.call("ListAssets").Error("ListAssets failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		}
	}()

	return ls.svc.ListAssets(ctx)
}

// SetAssetAvailability wraps the service method with logging
func (ls *logService) SetAssetAvailability(ctx context.Context, network, ticker string, available bool) (asset *Asset, err error) {
	start := time.Now()
	log := ls.call("SetAssetAvailability").With(
		zap.String("network", network),
		zap.String("ticker", ticker),
		zap.Bool("available", available),
	)
	log.Info("SetAssetAvailability started")

	defer func() {
		if err != nil {
			log.Error("SetAssetAvailability failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
			return
		}
		log.Info("SetAssetAvailability completed", zap.Duration("duration", time.Since(start)))
	}()

	return ls.svc.SetAssetAvailability(ctx, network, ticker, available)
}

func (ls *logService) Wait() {
	ls.svc.Wait()
}
