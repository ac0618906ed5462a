package httpx

import (
	"errors"
	"net/http"

	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/service"
)

// BlogHandlers provides HTTP handlers for blog posts.
type BlogHandlers struct {
	Svc *service.BlogService
}

// List returns published posts, newest first. Drafts are never listed here.
func (h *BlogHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, defaultPageSize, maxPageSize)

	blogs, err := h.Svc.ListPublic(r.Context(), limit, offset)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, blogs)
}

// Create publishes or drafts a post authored by the authenticated principal.
// The author is taken from the request context, not the body.
func (h *BlogHandlers) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "missing_authorization",
			Err:     errors.New("authentication is required"),
		})
		return
	}

	var req model.CreateBlogRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	blog, err := h.Svc.Create(r.Context(), &req, principal.Email)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, blog)
}
