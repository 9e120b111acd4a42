package httpadapter

import (
	"net/http"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

type registerRequest struct {
	Name     string      `json:"name" validate:"required,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role" validate:"required,oneof=startup investor"`
	Company  string      `json:"company" validate:"max=200"`
	Bio      string      `json:"bio" validate:"max=2000"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	Name    string `json:"name" validate:"max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Company string `json:"company" validate:"max=200"`
	Bio     string `json:"bio" validate:"max=2000"`
}

// handleRegister creates a startup or investor account and returns a
// session with status 201.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	sess, err := h.svc.Accounts.Register(r.Context(), port.RegisterReq{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Company:  req.Company,
		Bio:      req.Bio,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	sess, err := h.svc.Accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Accounts.Me(r.Context(), identityFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// handleUpdateProfile changes the non-empty fields of the caller's profile.
func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	acc, err := h.svc.Accounts.UpdateProfile(r.Context(), identityFrom(r.Context()), port.ProfileReq(req))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}
