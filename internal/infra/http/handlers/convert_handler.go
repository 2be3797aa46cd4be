package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type ConvertHandler struct {
	ConvertUC *usecase.ConvertUseCase
	Logger    logger.Logger
}

func NewConvertHandler(uc *usecase.ConvertUseCase, log logger.Logger) *ConvertHandler {
	return &ConvertHandler{ConvertUC: uc, Logger: log}
}

// List (GET /api/converts?stage=&search=&assigned_to=)
func (h *ConvertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	converts, err := h.ConvertUC.List(r.Context(), usecase.ConvertFilter{
		Stage:      q.Get("stage"),
		Search:     q.Get("search"),
		AssignedTo: q.Get("assigned_to"),
	})
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, converts)
}

func (h *ConvertHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.ConvertUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ConvertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateConvertInput
	if !decode(w, r, &input) {
		return
	}

	createdBy := ""
	if user := middleware.UserFromContext(r.Context()); user != nil {
		createdBy = user.ID
	}

	c, err := h.ConvertUC.Create(r.Context(), input, createdBy)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ConvertHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateConvertInput
	if !decode(w, r, &input) {
		return
	}

	c, err := h.ConvertUC.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ConvertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ConvertUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListServices (GET /api/services)
func (h *ConvertHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.ConvertUC.ListServices(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}
