package swap

import "github.com/ethereum/go-ethereum/common"

// ValidationInput gathers everything the eligibility checks look at
type ValidationInput struct {
	Transfer              *Transfer
	BlockNumber           uint64
	SourceToken           common.Address
	Operator              common.Address
	CurrentHeight         uint64
	RequiredConfirmations uint64
	DestinationAvailable  bool
}

// Validate applies the eligibility checks in order and returns the first
// failing reason, or "" when the swap is eligible.
func Validate(in ValidationInput) RejectReason {
	if in.Transfer.IsERC20 && (in.Transfer.Token == nil || *in.Transfer.Token != in.SourceToken) {
		return ReasonInvalidToken
	}
	if in.Transfer.Recipient != in.Operator {
		return ReasonInvalidRecipient
	}
	if in.CurrentHeight < in.BlockNumber || in.CurrentHeight-in.BlockNumber < in.RequiredConfirmations {
		return ReasonInsufficientConfirmations
	}
	if !in.DestinationAvailable {
		return ReasonAssetUnavailable
	}
	return ""
}
