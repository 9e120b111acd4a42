package httpadapter

import "net/http"

// handleWebsocket authenticates the handshake and hands the connection to
// the realtime gateway. Browsers cannot set headers on websocket requests,
// so the token may also be passed as the token query parameter.
func (h *Handler) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	acc, err := h.svc.Accounts.Authenticate(r.Context(), token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.gateway.Serve(w, r, acc.Identity())
}
