package swap

import (
	"errors"
	"fmt"
)

var (
	ErrTxNotFound          = errors.New("source transaction not found")
	ErrInvalidHash         = errors.New("invalid transaction hash")
	ErrAlreadyProcessed    = errors.New("swap already processed")
	ErrExecutionUnresolved = errors.New("destination execution for this hash is unresolved")
	ErrConfirmationTimeout = errors.New("timed out waiting for confirmations")
	ErrSwapExists          = errors.New("swap record already exists")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrExecutionNotFound   = errors.New("execution not found")
	ErrInvalidRecord       = errors.New("sendTx must be set if and only if the swap executed")
)

// DecodeError reports call data the engine cannot interpret as a transfer.
// It always resolves to a terminal rejection.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode transfer: %s: %v", e.Reason, e.Err)
	}
	return "decode transfer: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExecutionError reports a failed destination submission.
// Broadcast is true when the transaction may have reached the network.
type ExecutionError struct {
	SendTx    string
	Broadcast bool
	Reverted  bool
	Err       error
}

func (e *ExecutionError) Error() string {
	switch {
	case e.Reverted:
		return fmt.Sprintf("destination transfer %s reverted", e.SendTx)
	case e.SendTx != "":
		return fmt.Sprintf("destination transfer %s failed: %v", e.SendTx, e.Err)
	default:
		return fmt.Sprintf("destination transfer failed: %v", e.Err)
	}
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ProcessedError carries the stored record of a hash that already resolved
type ProcessedError struct {
	Record *Record
}

func (e *ProcessedError) Error() string {
	return fmt.Sprintf("swap %s already processed", e.Record.Hash)
}

func (e *ProcessedError) Is(target error) bool {
	return target == ErrAlreadyProcessed
}
