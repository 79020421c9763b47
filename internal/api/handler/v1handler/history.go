package v1handler

import (
	"net/http"
	"smartdomain/internal/history"
	"smartdomain/pkg/domain"
	"smartdomain/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type historyPage struct {
	History    []domain.SearchHistory `json:"history"`
	Pagination domain.Pagination      `json:"pagination"`
}

// ListHistory returns a page of the caller's searches.
func (h Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	pageNum, pageErr := queryInt(r, "page")
	limit, limitErr := queryInt(r, "limit")
	if err := collect(pageErr, limitErr); err != nil {
		h.writeError(w, r, err)

		return
	}

	items, pagination, err := h.deps.History.List(r.Context(), GetUserIDFromContext(r.Context()), history.ListQuery{
		Page:       pageNum,
		Limit:      limit,
		Search:     r.URL.Query().Get("search"),
		SearchType: domain.SearchType(r.URL.Query().Get("searchType")),
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if items == nil {
		items = []domain.SearchHistory{}
	}
	h.writeData(w, r, http.StatusOK, historyPage{History: items, Pagination: pagination})
}

// CreateHistory records a search. Repeating a recent search returns the
// existing entry with 200 instead of 201.
func (h Handler) CreateHistory(w http.ResponseWriter, r *http.Request) {
	var input history.RecordInput
	if err := decodeBody(w, r, historyCreateSchema, &input); err != nil {
		h.writeError(w, r, err)

		return
	}

	entry, created, err := h.deps.History.Record(r.Context(), GetUserIDFromContext(r.Context()), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeData(w, r, status, entry)
}

// DeleteHistory removes the entries listed in ids, or everything with clear_all=true.
func (h Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserIDFromContext(ctx)

	if clearAll, _ := strconv.ParseBool(r.URL.Query().Get("clear_all")); clearAll {
		n, err := h.deps.History.Clear(ctx, userID)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		h.writeData(w, r, http.StatusOK, deletedResponse{Deleted: n})

		return
	}

	raw, idsErr := queryIDs(r, "ids")
	if err := collect(idsErr); err != nil {
		h.writeError(w, r, err)

		return
	}
	if len(raw) == 0 {
		h.writeError(w, r, serrors.Invalid("ids or clear_all is required",
			serrors.FieldError{Field: "ids", Message: "required unless clear_all=true"}))

		return
	}

	ids := make([]domain.HistoryID, len(raw))
	for i, id := range raw {
		ids[i] = domain.HistoryID(id)
	}

	n, err := h.deps.History.Delete(ctx, userID, ids)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, deletedResponse{Deleted: n})
}

// HistoryStats summarizes the caller's searches.
func (h Handler) HistoryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.History.Stats(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, stats)
}

// GetHistory returns one search.
func (h Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	entry, err := h.deps.History.Get(r.Context(), GetUserIDFromContext(r.Context()), domain.HistoryID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, entry)
}
