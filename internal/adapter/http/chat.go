package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

type createConversationRequest struct {
	ParticipantID uuid.UUID  `json:"participantId" validate:"required"`
	CampaignID    *uuid.UUID `json:"campaignId"`
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *Handler) handleListConversations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Chat.ListFor(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleCreateConversation returns the caller's conversation with the
// participant in the optional campaign scope, creating it when absent.
func (h *Handler) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	var req createConversationRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	conv, err := h.svc.Chat.GetOrCreate(r.Context(), identityFrom(r.Context()), req.ParticipantID, req.CampaignID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

func (h *Handler) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	conv, err := h.svc.Chat.Conversation(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, conv)
}

// handleListMessages returns messages after the afterSeq cursor. Clients
// resume a dropped realtime connection by passing the last seq they saw.
func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var afterSeq int64
	if raw := r.URL.Query().Get("afterSeq"); raw != "" {
		if afterSeq, err = strconv.ParseInt(raw, 10, 64); err != nil {
			h.writeError(w, r, domain.Validationf("afterSeq must be an integer"))
			return
		}
	}
	limit, err := intQuery(r, "limit")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	msgs, err := h.svc.Chat.Messages(r.Context(), identityFrom(r.Context()), id, afterSeq, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req sendMessageRequest
	if err = decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	msg, err := h.svc.Chat.AppendMessage(r.Context(), identityFrom(r.Context()), id, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	n, err := h.svc.Chat.MarkRead(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"marked": n})
}
