package httpadapter

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fundflow/internal/core/domain"
)

type userStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type campaignStatusRequest struct {
	Status domain.CampaignStatus `json:"status" validate:"required,oneof=draft active completed cancelled suspended"`
}

type userPage struct {
	Users      []domain.Account  `json:"users"`
	Pagination domain.Pagination `json:"pagination"`
}

func (h *Handler) handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Admin.Overview(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

func (h *Handler) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Admin.Users(r.Context(), identityFrom(r.Context()), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userPage{Users: res.Items, Pagination: res.Pagination})
}

func (h *Handler) handleSetUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req userStatusRequest
	if err = decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	acc, err := h.svc.Admin.SetUserActive(r.Context(), identityFrom(r.Context()), id, *req.IsActive)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// handleAdminCampaigns lists campaigns of every status.
func (h *Handler) handleAdminCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Admin.Campaigns(r.Context(), identityFrom(r.Context()), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaignPage{Campaigns: res.Items, Pagination: res.Pagination})
}

func (h *Handler) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignStatusRequest
	if err = decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Admin.SetCampaignStatus(r.Context(), identityFrom(r.Context()), id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleExportInvestments renders every investment into a spreadsheet. The
// document is buffered so a failure can still be reported with a status.
func (h *Handler) handleExportInvestments(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	contentType, err := h.svc.Admin.ExportInvestments(r.Context(), identityFrom(r.Context()), &buf)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	name := fmt.Sprintf("investments-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Warn("export write failed", slog.Any("error", err))
	}
}
