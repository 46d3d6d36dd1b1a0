package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/portfolio/portfolio-server/internal/audit"
	apperrors "github.com/portfolio/portfolio-server/internal/errors"
	"github.com/portfolio/portfolio-server/internal/httputil"
	"github.com/portfolio/portfolio-server/internal/model"
	"github.com/portfolio/portfolio-server/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login checks the password and hands back a fresh opaque token. The token
// is for the admin page's own bookkeeping; no route ever asks for it.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password model.Text `json:"password"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil || req.Password == "" {
		writeError(w, apperrors.MissingRequired("Password"))
		return
	}

	token, err := h.adminService.Login(r.Context(), req.Password.String())
	if err != nil {
		log.Error().Err(err).Msg("admin login error")
		writeError(w, apperrors.Internal("Login failed"))
		return
	}

	if token == "" {
		audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginFailure})
		writeError(w, apperrors.Unauthorized("Incorrect password"))
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventLoginSuccess})
	writeJSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	})
}
