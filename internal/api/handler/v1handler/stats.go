package v1handler

import "net/http"

// SystemStats returns public service counters.
func (h Handler) SystemStats(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.Stats.System(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	h.writeData(w, r, http.StatusOK, report)
}
