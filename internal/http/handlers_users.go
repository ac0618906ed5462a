package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/service"
)

// UserHandlers provides HTTP handlers for user registration and management.
type UserHandlers struct {
	Svc *service.UserService
}

// Register creates a new user. New users always start as donors; elevated
// roles are granted separately by an admin.
func (h *UserHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Register(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// List returns registered users, newest first.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultPageSize, maxPageSize)

	users, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, users)
}

// AdminStatus reports whether the addressed user currently holds the admin
// role. An unknown email reads as false rather than an error.
func (h *UserHandlers) AdminStatus(w http.ResponseWriter, r *http.Request) {
	isAdmin, err := h.Svc.IsAdmin(r.Context(), r.PathValue("email"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

// VolunteerStatus reports whether the addressed user currently holds the
// volunteer role.
func (h *UserHandlers) VolunteerStatus(w http.ResponseWriter, r *http.Request) {
	isVolunteer, err := h.Svc.IsVolunteer(r.Context(), r.PathValue("email"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"volunteer": isVolunteer})
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole assigns a user's role by ID. Only the known assignable roles are
// accepted.
func (h *UserHandlers) SetRole(w http.ResponseWriter, r *http.Request) {
	var req setRoleRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	role, ok := domainauth.ParseRole(req.Role)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_role",
			Err:     errors.New("role must be one of: donor, volunteer, admin"),
		})
		return
	}

	user, err := h.Svc.SetRole(r.Context(), r.PathValue("id"), role)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Delete removes a user by ID.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		WriteAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
