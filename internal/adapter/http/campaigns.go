package httpadapter

import (
	"net/http"
	"time"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// campaignRequest carries the editable campaign fields. Amounts are in
// cents. Absent fields are left unchanged on update.
type campaignRequest struct {
	Title       *string                `json:"title" validate:"omitempty,max=200"`
	Description *string                `json:"description" validate:"omitempty,max=20000"`
	GoalAmount  *int64                 `json:"goalAmount" validate:"omitempty,gt=0"`
	Deadline    *time.Time             `json:"deadline"`
	Category    *domain.Category       `json:"category"`
	Images      []string               `json:"images" validate:"max=20,dive,max=2048"`
	Status      *domain.CampaignStatus `json:"status"`
}

func (c campaignRequest) toPort() port.CampaignReq {
	return port.CampaignReq{
		Title:       c.Title,
		Description: c.Description,
		GoalAmount:  c.GoalAmount,
		Deadline:    c.Deadline,
		Category:    c.Category,
		Images:      c.Images,
		Status:      c.Status,
	}
}

type campaignUpdateRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required,max=10000"`
}

type campaignPage struct {
	Campaigns  []domain.Campaign `json:"campaigns"`
	Pagination domain.Pagination `json:"pagination"`
}

// handleListCampaigns returns a page of campaigns. Without a status query
// parameter only active campaigns are listed.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	f := domain.CampaignFilter{Page: page}
	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		c := domain.Category(v)
		f.Category = &c
	}
	if v := q.Get("status"); v != "" {
		s := domain.CampaignStatus(v)
		f.Status = &s
	}
	res, err := h.svc.Campaigns.List(r.Context(), f)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaignPage{Campaigns: res.Items, Pagination: res.Pagination})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Create(r.Context(), identityFrom(r.Context()), req.toPort())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignRequest
	if err = decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Campaigns.Update(r.Context(), identityFrom(r.Context()), id, req.toPort())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Campaigns.Delete(r.Context(), identityFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "campaign deleted"})
}

func (h *Handler) handleAddCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignUpdateRequest
	if err = decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.svc.Campaigns.AppendUpdate(r.Context(), identityFrom(r.Context()), id, req.Title, req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handler) handleCampaignsByCreator(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Campaigns.ListByCreator(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreatorStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	st, err := h.svc.Campaigns.CreatorStats(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
