package swap

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/navette/pkg/app/errors"
	apphttp "github.com/chainsafe/navette/pkg/app/http"
)

const (
	defaultBalanceNetwork = "Sepolia"
	defaultBalanceTicker  = "BASIC"

	maxBodySize = 1 << 20
)

// ExecuteSwapRequest is the body of POST /swaps
type ExecuteSwapRequest struct {
	Hash string `json:"hash" validate:"required,startswith=0x,hexadecimal,max=66"`
}

// ExecuteSwapResponse is returned for success and rejected outcomes
type ExecuteSwapResponse struct {
	Status  Status       `json:"status"`
	Reason  RejectReason `json:"reason,omitempty"`
	Message string       `json:"message"`
	Record  *Record      `json:"swapData"`
}

// AvailableResponse is the body of GET /swaps/available
type AvailableResponse struct {
	Network        string           `json:"network"`
	Ticker         string           `json:"ticker"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
}

// SetAvailabilityRequest is the body of PATCH /assets
type SetAvailabilityRequest struct {
	Network   string `json:"network" validate:"required"`
	Ticker    string `json:"ticker" validate:"required"`
	Available *bool  `json:"available" validate:"required"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service  Service
	validate *validator.Validate
	logger   *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the swap service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}

	r.Route("/swaps", func(r chi.Router) {
		r.Post("/", apphttp.HandleError(h.executeSwap))
		r.Get("/", apphttp.HandleError(h.listSwaps))
		r.Get("/available", apphttp.HandleError(h.available))
	})
	r.Get("/assets", apphttp.HandleError(h.listAssets))
	r.Patch("/assets", apphttp.HandleError(h.setAvailability))
}

func (h *HTTP) executeSwap(w http.ResponseWriter, r *http.Request) error {
	var req ExecuteSwapRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	// A client hanging up must not abandon a confirmation wait or a broadcast transfer.
	outcome, err := h.service.ExecuteSwap(context.WithoutCancel(r.Context()), req.Hash)
	if err != nil {
		var processed *ProcessedError
		if errors.As(err, &processed) {
			h.writeJSON(w, http.StatusConflict, map[string]any{
				"error":    "swap already processed",
				"code":     http.StatusConflict,
				"swapData": processed.Record,
			})
			return nil
		}
		return err
	}

	resp := ExecuteSwapResponse{
		Status: outcome.Status,
		Reason: outcome.Reason,
		Record: outcome.Record,
	}
	if outcome.Status == StatusRejected {
		resp.Message = outcome.Reason.Message()
		h.writeJSON(w, http.StatusUnprocessableEntity, resp)
		return nil
	}

	resp.Message = "swap executed"
	h.writeJSON(w, http.StatusCreated, resp)
	return nil
}

func (h *HTTP) listSwaps(w http.ResponseWriter, r *http.Request) error {
	records, err := h.service.ListSwaps(r.Context())
	if err != nil {
		return err
	}
	if records == nil {
		records = []*Record{}
	}
	h.writeJSON(w, http.StatusOK, records)
	return nil
}

func (h *HTTP) available(w http.ResponseWriter, r *http.Request) error {
	network := r.URL.Query().Get("network")
	if network == "" {
		network = defaultBalanceNetwork
	}
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		ticker = defaultBalanceTicker
	}

	balance, err := h.service.GetAssetBalance(r.Context(), network, ticker)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, AvailableResponse{
		Network:        network,
		Ticker:         ticker,
		CurrentBalance: balance,
	})
	return nil
}

func (h *HTTP) listAssets(w http.ResponseWriter, r *http.Request) error {
	assets, err := h.service.ListAssets(r.Context())
	if err != nil {
		return err
	}
	if assets == nil {
		assets = []*Asset{}
	}
	h.writeJSON(w, http.StatusOK, assets)
	return nil
}

func (h *HTTP) setAvailability(w http.ResponseWriter, r *http.Request) error {
	var req SetAvailabilityRequest
	if err := h.decode(r, &req); err != nil {
		return err
	}

	asset, err := h.service.SetAssetAvailability(r.Context(), req.Network, req.Ticker, *req.Available)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, asset)
	return nil
}

// decode reads a JSON body into dst and validates its struct tags
func (h *HTTP) decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.BadRequestError(err, "invalid "+verrs[0].Field())
		}
		return apperrors.BadRequestError(err, "invalid request")
	}
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}
