package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/service"
)

// DonationHandlers provides HTTP handlers for donation requests.
type DonationHandlers struct {
	Svc *service.DonationService
}

// List returns donation requests filtered by the blood_group, district and
// status query params, newest first. The listing is public so donors can
// browse open requests without an account.
func (h *DonationHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultPageSize, maxPageSize)
	opts := model.DonationRequestsListOptions{Limit: limit, Offset: offset}

	if v := strings.TrimSpace(r.URL.Query().Get("blood_group")); v != "" {
		opts.BloodGroup = &v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("district")); v != "" {
		opts.District = &v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
		status, ok := model.ParseDonationRequestStatus(v)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_status",
				Err:     errors.New("status must be one of: pending, inprogress, done, canceled"),
			})
			return
		}
		opts.Status = &status
	}

	requests, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, requests)
}

// Create registers a new donation request on behalf of the authenticated
// principal. New requests always start out pending.
func (h *DonationHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "missing_authorization",
			Err:     errors.New("authentication is required"),
		})
		return
	}

	var req model.CreateDonationRequestRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	dr, err := h.Svc.Create(r.Context(), &req, principal.Email)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, dr)
}

type setDonationStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus moves a donation request through its lifecycle.
func (h *DonationHandlers) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setDonationStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	status, ok := model.ParseDonationRequestStatus(req.Status)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_status",
			Err:     errors.New("status must be one of: pending, inprogress, done, canceled"),
		})
		return
	}

	dr, err := h.Svc.SetStatus(r.Context(), r.PathValue("id"), status)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, dr)
}
