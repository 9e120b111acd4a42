package httpadapter

import "net/http"

// handlePublicStats returns the platform counters shown on the landing page.
// It requires no authentication.
func (h *Handler) handlePublicStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Admin.PublicStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
