package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type AuthHandler struct {
	AuthUC *usecase.AuthUseCase
	Logger logger.Logger
}

func NewAuthHandler(uc *usecase.AuthUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{AuthUC: uc, Logger: log}
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if !decode(w, r, &input) {
		return
	}

	out, err := h.AuthUC.Login(r.Context(), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Me (GET /api/auth/me)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, usecase.CodeUnauthorized, "not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.AuthUC.ListUsers(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.AuthUC.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
