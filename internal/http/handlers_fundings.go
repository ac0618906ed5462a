package httpx

import (
	"errors"
	"net/http"

	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/service"
)

// FundingHandlers provides HTTP handlers for funding records and payment
// intents.
type FundingHandlers struct {
	Svc *service.FundingService
}

// List returns recorded fundings, newest first.
func (h *FundingHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultPageSize, maxPageSize)

	fundings, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, fundings)
}

// Record stores a completed contribution attributed to the authenticated
// principal. Recording happens after the processor confirms the payment on
// the client side.
func (h *FundingHandlers) Record(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "missing_authorization",
			Err:     errors.New("authentication is required"),
		})
		return
	}

	var req model.CreateFundingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	funding, err := h.Svc.Record(r.Context(), &req, principal.Email)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, funding)
}

// CreatePaymentIntent asks the payment processor for a client secret the
// frontend uses to confirm the payment.
func (h *FundingHandlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentIntentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
