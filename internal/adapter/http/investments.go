package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

type paymentIntentRequest struct {
	CampaignID uuid.UUID `json:"campaignId" validate:"required"`
	Amount     int64     `json:"amount" validate:"required,gt=0"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string    `json:"paymentIntentId" validate:"required,max=255"`
	CampaignID      uuid.UUID `json:"campaignId" validate:"required"`
	Amount          int64     `json:"amount" validate:"required,gt=0"`
}

type confirmPaymentResponse struct {
	Message    string             `json:"message"`
	Investment *domain.Investment `json:"investment"`
}

func (h *Handler) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := h.svc.Investments.CreatePaymentIntent(r.Context(), identityFrom(r.Context()), req.CampaignID, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleConfirmPayment applies a succeeded payment to the funding ledger.
// Repeating a confirmation answers 409.
func (h *Handler) handleConfirmPayment(w http.ResponseWriter, r *http.Request) {
	var req confirmPaymentRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	inv, err := h.svc.Investments.ConfirmPayment(r.Context(), identityFrom(r.Context()), port.ConfirmReq{
		PaymentIntentID: req.PaymentIntentID,
		CampaignID:      req.CampaignID,
		Amount:          req.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmPaymentResponse{Message: "investment completed", Investment: inv})
}

func (h *Handler) handleInvestorInvestments(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Investments.ListForInvestor(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleAllInvestments(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Investments.ListAll(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
