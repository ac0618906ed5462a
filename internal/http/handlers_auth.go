package httpx

import (
	"net/http"

	"github.com/savelife/savelife-api/internal/service"
)

// AuthHandlers provides HTTP handlers for token issuance.
type AuthHandlers struct {
	Svc *service.AuthService
}

type issueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken signs a bearer token for the given identity. Possession of a
// token proves nothing beyond the email the caller claimed; authorization is
// decided per request from the stored role.
func (h *AuthHandlers) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.IssueToken(req.Email, req.Name)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, issueTokenResponse{Token: token})
}
