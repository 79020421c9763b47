package v1handler

import (
	"net/http"
	"smartdomain/internal/apikeys"
	"smartdomain/pkg/domain"
	"time"

	"github.com/go-chi/chi/v5"
)

type createKeyRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type keysResponse struct {
	Keys []domain.APIKey `json:"keys"`
}

// ListKeys returns the caller's API keys without their secrets.
func (h Handler) ListKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.deps.APIKeys.List(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if keys == nil {
		keys = []domain.APIKey{}
	}
	h.writeData(w, r, http.StatusOK, keysResponse{Keys: keys})
}

// CreateKey issues a key. The plaintext secret is only returned here.
func (h Handler) CreateKey(w http.ResponseWriter, r *http.Request) {
	var req createKeyRequest
	if err := decodeBody(w, r, keyCreateSchema, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	created, err := h.deps.APIKeys.Create(r.Context(), GetUserIDFromContext(r.Context()), apikeys.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusCreated, created)
}

// DeleteKey revokes a key.
func (h Handler) DeleteKey(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.APIKeys.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.APIKeyID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, deletedResponse{Deleted: 1})
}
