// Package swap implements the validation and execution engine that mirrors
// source chain deposits onto the destination chain.
package swap

import (
	"time"

	"github.com/shopspring/decimal"
)

// RejectReason names the terminal reason a swap was declined
type RejectReason string

const (
	ReasonInvalidToken              RejectReason = "invalid_token"
	ReasonInvalidRecipient          RejectReason = "invalid_recipient"
	ReasonInsufficientConfirmations RejectReason = "insufficient_confirmations"
	ReasonAssetUnavailable          RejectReason = "asset_unavailable"
	ReasonUnsupportedTransfer       RejectReason = "unsupported_transfer"
	ReasonSourceReverted            RejectReason = "source_reverted"
)

// Message returns a human readable description of the reason
func (r RejectReason) Message() string {
	switch r {
	case ReasonInvalidToken:
		return "invalid token address on source network"
	case ReasonInvalidRecipient:
		return "invalid recipient"
	case ReasonInsufficientConfirmations:
		return "insufficient confirmations"
	case ReasonAssetUnavailable:
		return "destination asset unavailable"
	case ReasonUnsupportedTransfer:
		return "unsupported transfer"
	case ReasonSourceReverted:
		return "source transaction reverted"
	default:
		return string(r)
	}
}

// Record is the persisted outcome of one swap attempt, one per source transaction hash.
// SendTx is set if and only if Executed is true.
type Record struct {
	Hash                      string           `json:"hash"`
	Executed                  bool             `json:"executed"`
	User                      string           `json:"user"`
	Operator                  string           `json:"operator"`
	BlockNumber               uint64           `json:"blockNumber"`
	IsERC20                   bool             `json:"isERC20"`
	TokenAddressOnSource      *string          `json:"tokenAddressOnSource,omitempty"`
	TokenAddressOnDestination *string          `json:"tokenAddressOnDestination,omitempty"`
	Amount                    *decimal.Decimal `json:"amount,omitempty"`
	SendTx                    *string          `json:"sendTx,omitempty"`
	RejectReason              *RejectReason    `json:"rejectReason,omitempty"`
	CreatedAt                 time.Time        `json:"createdAt"`
}

// Validate checks that SendTx is set if and only if the swap executed
func (r *Record) Validate() error {
	hasSendTx := r.SendTx != nil && *r.SendTx != ""
	if r.Executed != hasSendTx {
		return ErrInvalidRecord
	}
	if r.Executed && r.RejectReason != nil {
		return ErrInvalidRecord
	}
	return nil
}

// Asset is a tracked (ticker, network) token and the operator's last observed balance
type Asset struct {
	Ticker         string           `json:"ticker"`
	Network        string           `json:"network"`
	Address        string           `json:"address"`
	Decimals       uint8            `json:"decimals"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
	Available      bool             `json:"available"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ExecutionState is the lifecycle state of a destination submission
type ExecutionState string

const (
	ExecutionExecuting  ExecutionState = "executing"
	ExecutionConfirmed  ExecutionState = "confirmed"
	ExecutionFailed     ExecutionState = "failed"
	ExecutionUnresolved ExecutionState = "unresolved"
)

// IsOpen reports whether the execution still blocks new attempts for its hash
func (s ExecutionState) IsOpen() bool {
	return s == ExecutionExecuting || s == ExecutionUnresolved
}

// Execution journals a signed destination transfer. It is written before the
// transaction is broadcast so the destination hash survives a crash. Record is
// the swap record to persist once the transfer confirms.
type Execution struct {
	Hash      string          `json:"hash"`
	SendTx    string          `json:"sendTx"`
	Nonce     uint64          `json:"nonce"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	State     ExecutionState  `json:"state"`
	Record    *Record         `json:"record,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Status is the kind of a resolved swap outcome
type Status string

const (
	StatusSuccess  Status = "success"
	StatusRejected Status = "rejected"
)

// Outcome is the non-error result of ExecuteSwap
type Outcome struct {
	Status Status       `json:"status"`
	Reason RejectReason `json:"reason,omitempty"`
	Record *Record      `json:"swapData"`
}

// Succeeded builds a success outcome
func Succeeded(rec *Record) *Outcome {
	return &Outcome{Status: StatusSuccess, Record: rec}
}

// Rejected builds a rejection outcome carrying the partial record
func Rejected(reason RejectReason, rec *Record) *Outcome {
	return &Outcome{Status: StatusRejected, Reason: reason, Record: rec}
}

func strPtr(s string) *string {
	return &s
}
