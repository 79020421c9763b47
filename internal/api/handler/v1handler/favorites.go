package v1handler

import (
	"net/http"
	"smartdomain/internal/favorites"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

type favoritesPage struct {
	Favorites  []domain.Favorite `json:"favorites"`
	Pagination domain.Pagination `json:"pagination"`
}

type createFavoriteRequest struct {
	Domain      string   `json:"domain"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
	IsAvailable *bool    `json:"isAvailable"`
}

type updateFavoriteRequest struct {
	Tags        *[]string `json:"tags"`
	Notes       *string   `json:"notes"`
	IsAvailable *bool     `json:"isAvailable"`
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}

// ListFavorites returns a page of the caller's saved domains.
func (h Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	pageNum, pageErr := queryInt(r, "page")
	limit, limitErr := queryInt(r, "limit")
	available, availableErr := queryBool(r, "available")
	if err := collect(pageErr, limitErr, availableErr); err != nil {
		h.writeError(w, r, err)

		return
	}

	items, pagination, err := h.deps.Favorites.List(r.Context(), GetUserIDFromContext(r.Context()), favorites.ListQuery{
		Page:      pageNum,
		Limit:     limit,
		Search:    r.URL.Query().Get("search"),
		Available: available,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if items == nil {
		items = []domain.Favorite{}
	}
	h.writeData(w, r, http.StatusOK, favoritesPage{Favorites: items, Pagination: pagination})
}

// CreateFavorite saves a domain.
func (h Handler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req createFavoriteRequest
	if err := decodeBody(w, r, favoriteCreateSchema, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	fav, err := h.deps.Favorites.Create(r.Context(), GetUserIDFromContext(r.Context()), favorites.CreateInput{
		Domain:      req.Domain,
		Tags:        req.Tags,
		Notes:       req.Notes,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusCreated, fav)
}

// DeleteFavorites removes the favorites listed in the ids query parameter.
func (h Handler) DeleteFavorites(w http.ResponseWriter, r *http.Request) {
	raw, idsErr := queryIDs(r, "ids")
	if err := collect(idsErr); err != nil {
		h.writeError(w, r, err)

		return
	}
	if len(raw) == 0 {
		h.writeError(w, r, serrors.Invalid("ids are required", serrors.FieldError{Field: "ids", Message: "required"}))

		return
	}

	ids := make([]domain.FavoriteID, len(raw))
	for i, id := range raw {
		ids[i] = domain.FavoriteID(id)
	}

	n, err := h.deps.Favorites.DeleteMany(r.Context(), GetUserIDFromContext(r.Context()), ids)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, deletedResponse{Deleted: n})
}

// GetFavorite returns one saved domain.
func (h Handler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	fav, err := h.deps.Favorites.Get(r.Context(), GetUserIDFromContext(r.Context()), domain.FavoriteID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, fav)
}

// UpdateFavorite changes the tags, notes or availability of a saved domain.
func (h Handler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req updateFavoriteRequest
	if err := decodeBody(w, r, favoriteUpdateSchema, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	fav, err := h.deps.Favorites.Update(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.FavoriteID(id),
		favorites.UpdateInput{Tags: req.Tags, Notes: req.Notes, IsAvailable: req.IsAvailable})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, fav)
}

// DeleteFavorite removes one saved domain.
func (h Handler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Favorites.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.FavoriteID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, deletedResponse{Deleted: 1})
}
