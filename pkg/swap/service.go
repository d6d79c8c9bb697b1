package swap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/navette/internal/metrics"
	apperrors "github.com/chainsafe/navette/pkg/app/errors"
	"github.com/chainsafe/navette/pkg/ethereum"
)

const (
	// maxHashDigits is the number of hex digits in a 32-byte transaction hash
	maxHashDigits = 64

	balanceRefreshTimeout = time.Minute
)

// SourceChain is the read-only view of the chain deposits are made on
type SourceChain interface {
	TokenReader
	GetTransaction(ctx context.Context, hash common.Hash) (*ethereum.Transaction, error)
	GetReceipt(ctx context.Context, hash common.Hash) (*ethereum.Receipt, error)
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
}

// Service defines the interface for the swap engine
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	ExecuteSwap(ctx context.Context, hash string) (*Outcome, error)
	ListSwaps(ctx context.Context) ([]*Record, error)
	GetAssetBalance(ctx context.Context, network, ticker string) (*decimal.Decimal, error)
	ListAssets(ctx context.Context) ([]*Asset, error)
	SetAssetAvailability(ctx context.Context, network, ticker string, available bool) (*Asset, error)
	// Wait blocks until background work started by earlier swaps has finished.
	Wait()
}

// Config holds the values the engine consumes
type Config struct {
	SourceNetwork         string
	DestinationNetwork    string
	SourceTicker          string
	DestinationTicker     string
	SourceToken           common.Address
	Operator              common.Address
	RequiredConfirmations uint64
	PollInterval          time.Duration
	ConfirmationTimeout   time.Duration
}

type swapService struct {
	cfg      Config
	source   SourceChain
	decoder  *Decoder
	executor *Executor
	ledger   *Ledger
	locks    *hashLocker
	wg       sync.WaitGroup
	logger   *zap.Logger
}

// NewService creates a new swap service
func NewService(cfg Config, source SourceChain, executor *Executor, ledger *Ledger, logger *zap.Logger) Service {
	return &swapService{
		cfg:      cfg,
		source:   source,
		decoder:  NewDecoder(source),
		executor: executor,
		ledger:   ledger,
		locks:    newHashLocker(),
		logger:   logger.With(zap.String("component", "swap_service")),
	}
}

// ExecuteSwap validates the source transaction identified by hash and, when it
// is eligible, mirrors it on the destination chain.
//
// The process:
//  1. Serializes on the hash so concurrent requests resolve once
//  2. Refuses hashes that already have a record or an open execution
//  3. Waits for the source receipt to reach the required confirmations
//  4. Decodes and validates the transfer, persisting any rejection
//  5. Signs, journals and broadcasts the destination transfer
//  6. Persists the executed record and refreshes asset balances
//
// A rejection is a successful call returning a rejected Outcome; errors are
// reserved for lookups that fail and for failed destination transfers.
func (s *swapService) ExecuteSwap(ctx context.Context, hash string) (*Outcome, error) {
	key, ok := normalizeHash(hash)
	if !ok {
		return nil, apperrors.BadRequestError(ErrInvalidHash, "hash must be a 0x-prefixed 32-byte hex string")
	}

	unlock := s.locks.Lock(key)
	defer unlock()

	start := time.Now()
	outcome, err := s.executeLocked(ctx, key)

	status := "failed"
	if err == nil {
		status = string(outcome.Status)
	}
	metrics.SwapsTotal.WithLabelValues(status).Inc()
	metrics.SwapDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	return outcome, err
}

func (s *swapService) executeLocked(ctx context.Context, hash string) (*Outcome, error) {
	existing, err := s.ledger.GetSwap(ctx, hash)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to look up swap: %w", err))
	}
	if existing != nil {
		return nil, apperrors.ConflictError(&ProcessedError{Record: existing}, "swap already processed")
	}

	open, err := s.ledger.HasOpenExecution(ctx, hash)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to look up executions: %w", err))
	}
	if open {
		return nil, apperrors.ConflictError(ErrExecutionUnresolved, "a destination transfer for this hash is still unresolved")
	}

	txHash := common.HexToHash(hash)
	tx, err := s.source.GetTransaction(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.ErrNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrTxNotFound, "transaction not found")
		}
		return nil, apperrors.UnavailableError(fmt.Errorf("failed to fetch source transaction: %w", err), "source chain unavailable")
	}

	receipt, height, err := s.awaitConfirmations(ctx, txHash)
	if err != nil {
		if errors.Is(err, ErrConfirmationTimeout) {
			return nil, apperrors.TimeoutError(err, "timed out waiting for source confirmations")
		}
		return nil, apperrors.GeneralError(err)
	}

	rec := &Record{
		Hash:        hash,
		User:        tx.From.Hex(),
		BlockNumber: receipt.BlockNumber,
	}
	if tx.To != nil {
		rec.Operator = tx.To.Hex()
	}

	if !receipt.Succeeded {
		return s.reject(ctx, ReasonSourceReverted, rec)
	}

	transfer, err := s.decoder.Decode(ctx, tx)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			s.logger.Info("Source transaction is not a supported transfer",
				zap.String("hash", hash),
				zap.String("reason", decodeErr.Reason))
			return s.reject(ctx, ReasonUnsupportedTransfer, rec)
		}
		return nil, apperrors.GeneralError(err)
	}

	rec.Operator = transfer.Recipient.Hex()
	rec.IsERC20 = transfer.IsERC20
	amount := transfer.Amount
	rec.Amount = &amount

	destAsset, err := s.ledger.GetAsset(ctx, s.cfg.DestinationNetwork, s.cfg.DestinationTicker)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to look up destination asset: %w", err))
	}
	if transfer.IsERC20 {
		rec.TokenAddressOnSource = strPtr(transfer.Token.Hex())
		if destAsset != nil {
			rec.TokenAddressOnDestination = strPtr(common.HexToAddress(destAsset.Address).Hex())
		}
	}

	reason := Validate(ValidationInput{
		Transfer:              transfer,
		BlockNumber:           receipt.BlockNumber,
		SourceToken:           s.cfg.SourceToken,
		Operator:              s.cfg.Operator,
		CurrentHeight:         height,
		RequiredConfirmations: s.cfg.RequiredConfirmations,
		DestinationAvailable:  destAsset != nil && destAsset.Available,
	})
	if reason != "" {
		return s.reject(ctx, reason, rec)
	}

	sendTx, err := s.execute(ctx, rec, destAsset, tx.From, amount)
	if err != nil {
		return nil, err
	}

	rec.Executed = true
	rec.SendTx = &sendTx
	stored, err := s.ledger.AddSwap(ctx, rec)
	if errors.Is(err, ErrSwapExists) {
		// The reconciler saw the receipt first and wrote the journaled record.
		stored, err = s.adoptReconciled(ctx, hash, sendTx)
	}
	if err != nil {
		// The execution stays open; the reconciler writes the record from the receipt.
		s.logger.Error("Failed to persist executed swap",
			zap.String("hash", hash),
			zap.String("send_tx", sendTx),
			zap.Error(err))
		return nil, apperrors.GeneralError(fmt.Errorf("failed to persist executed swap: %w", err))
	}
	if err := s.ledger.ResolveExecution(ctx, sendTx, ExecutionConfirmed); err != nil {
		s.logger.Error("Failed to confirm execution", zap.String("send_tx", sendTx), zap.Error(err))
	}

	s.refreshBalances()

	return Succeeded(stored), nil
}

// adoptReconciled returns the record stored for hash if it was written for sendTx
func (s *swapService) adoptReconciled(ctx context.Context, hash, sendTx string) (*Record, error) {
	stored, err := s.ledger.GetSwap(ctx, hash)
	if err != nil {
		return nil, err
	}
	if stored == nil || !stored.Executed || stored.SendTx == nil || *stored.SendTx != sendTx {
		return nil, ErrSwapExists
	}
	s.logger.Info("Executed swap already recorded by reconciler",
		zap.String("hash", hash),
		zap.String("send_tx", sendTx))
	return stored, nil
}

// execute performs the destination transfer and returns its hash
func (s *swapService) execute(ctx context.Context, rec *Record, asset *Asset, user common.Address, amount decimal.Decimal) (string, error) {
	prepared, err := s.executor.Prepare(ctx, asset, user, amount)
	if err != nil {
		return "", apperrors.GeneralError(err)
	}

	sendTx := prepared.Hash().Hex()
	pending := *rec
	pending.Executed = true
	pending.SendTx = &sendTx
	exec := &Execution{
		Hash:      rec.Hash,
		SendTx:    sendTx,
		Nonce:     prepared.Nonce(),
		Recipient: user.Hex(),
		Amount:    amount,
		State:     ExecutionExecuting,
		Record:    &pending,
	}
	if err := s.ledger.OpenExecution(ctx, exec); err != nil {
		return "", apperrors.GeneralError(err)
	}

	if _, err := s.executor.Submit(ctx, prepared); err != nil {
		var execErr *ExecutionError
		if errors.As(err, &execErr) && execErr.Reverted {
			if rerr := s.ledger.ResolveExecution(ctx, sendTx, ExecutionFailed); rerr != nil {
				s.logger.Error("Failed to mark execution failed", zap.String("send_tx", sendTx), zap.Error(rerr))
			}
		}
		metrics.ErrorsTotal.WithLabelValues("swap_service", "execution").Inc()
		return "", apperrors.GeneralError(err)
	}
	return sendTx, nil
}

func (s *swapService) reject(ctx context.Context, reason RejectReason, rec *Record) (*Outcome, error) {
	rec.RejectReason = &reason
	stored, err := s.ledger.AddSwap(ctx, rec)
	if err != nil {
		if errors.Is(err, ErrSwapExists) {
			return nil, apperrors.ConflictError(ErrAlreadyProcessed, "swap already processed")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to persist rejected swap: %w", err))
	}
	metrics.SwapRejections.WithLabelValues(string(reason)).Inc()
	return Rejected(reason, stored), nil
}

// awaitConfirmations polls until the receipt for hash exists and the chain
// height is at least RequiredConfirmations past its block. A reverted receipt
// is returned as soon as it is seen.
func (s *swapService) awaitConfirmations(ctx context.Context, hash common.Hash) (*ethereum.Receipt, uint64, error) {
	start := time.Now()
	defer func() {
		metrics.ConfirmationWait.Observe(time.Since(start).Seconds())
	}()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConfirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		receipt, height, err := s.confirmations(ctx, hash)
		switch {
		case err != nil:
			s.logger.Warn("Confirmation check failed, retrying", zap.String("hash", hash.Hex()), zap.Error(err))
		case receipt != nil && (!receipt.Succeeded || confirmed(receipt.BlockNumber, height, s.cfg.RequiredConfirmations)):
			return receipt, height, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, 0, ErrConfirmationTimeout
			}
			return nil, 0, ctx.Err()
		case <-ticker.C:
		}
	}
}

// confirmations returns a nil receipt while the transaction is not mined
func (s *swapService) confirmations(ctx context.Context, hash common.Hash) (*ethereum.Receipt, uint64, error) {
	receipt, err := s.source.GetReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.ErrNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	height, err := s.source.GetLatestBlockNumber(ctx)
	if err != nil {
		return nil, 0, err
	}
	return receipt, height, nil
}

func confirmed(block, height, required uint64) bool {
	return height >= block && height-block >= required
}

// refreshBalances updates both networks in the background; Wait joins it
func (s *swapService) refreshBalances() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), balanceRefreshTimeout)
		defer cancel()

		if err := s.ledger.UpdateAssetBalances(ctx, s.cfg.SourceNetwork, s.cfg.DestinationNetwork); err != nil {
			s.logger.Warn("Balance refresh failed", zap.Error(err))
		}
	}()
}

// ListSwaps returns all swap records in insertion order
func (s *swapService) ListSwaps(ctx context.Context) ([]*Record, error) {
	records, err := s.ledger.GetSwaps(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to list swaps: %w", err))
	}
	return records, nil
}

// GetAssetBalance returns the last observed operator balance, nil when unknown
func (s *swapService) GetAssetBalance(ctx context.Context, network, ticker string) (*decimal.Decimal, error) {
	balance, err := s.ledger.GetAssetBalance(ctx, network, ticker)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to get asset balance: %w", err))
	}
	return balance, nil
}

func (s *swapService) ListAssets(ctx context.Context) ([]*Asset, error) {
	assets, err := s.ledger.ListAssets(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to list assets: %w", err))
	}
	return assets, nil
}

func (s *swapService) SetAssetAvailability(ctx context.Context, network, ticker string, available bool) (*Asset, error) {
	asset, err := s.ledger.SetAssetAvailability(ctx, network, ticker, available)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "asset not found")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to update asset: %w", err))
	}
	return asset, nil
}

func (s *swapService) Wait() {
	s.wg.Wait()
}

// normalizeHash accepts 0x-prefixed hex of up to 64 digits and left-pads it to 32 bytes
func normalizeHash(hash string) (string, bool) {
	if len(hash) < 3 || len(hash) > 2+maxHashDigits || (hash[:2] != "0x" && hash[:2] != "0X") {
		return "", false
	}
	for _, c := range hash[2:] {
		if !isHexDigit(c) {
			return "", false
		}
	}
	return common.HexToHash(hash).Hex(), true
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
