package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type VoiceHandler struct {
	VoiceUC *usecase.VoiceAgentUseCase
	Logger  logger.Logger
}

func NewVoiceHandler(uc *usecase.VoiceAgentUseCase, log logger.Logger) *VoiceHandler {
	return &VoiceHandler{VoiceUC: uc, Logger: log}
}

type makeCallRequest struct {
	ConvertID string `json:"convert_id"`
}

func (h *VoiceHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.VoiceUC.Config(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *VoiceHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var input usecase.VoiceAgentInput
	if !decode(w, r, &input) {
		return
	}

	cfg, err := h.VoiceUC.UpdateConfig(r.Context(), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *VoiceHandler) ListScripts(w http.ResponseWriter, r *http.Request) {
	scripts, err := h.VoiceUC.ListScripts(r.Context())
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, scripts)
}

func (h *VoiceHandler) CreateScript(w http.ResponseWriter, r *http.Request) {
	var input usecase.CallScriptInput
	if !decode(w, r, &input) {
		return
	}

	script, err := h.VoiceUC.CreateScript(r.Context(), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, script)
}

func (h *VoiceHandler) UpdateScript(w http.ResponseWriter, r *http.Request) {
	var input usecase.CallScriptInput
	if !decode(w, r, &input) {
		return
	}

	script, err := h.VoiceUC.UpdateScript(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, script)
}

func (h *VoiceHandler) DeleteScript(w http.ResponseWriter, r *http.Request) {
	if err := h.VoiceUC.DeleteScript(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCalls (GET /api/voice-agent/calls?status=&convert_id=)
func (h *VoiceHandler) ListCalls(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	calls, err := h.VoiceUC.ListCalls(r.Context(), usecase.CallFilter{
		Status:    q.Get("status"),
		ConvertID: q.Get("convert_id"),
	})
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, calls)
}

func (h *VoiceHandler) GetCall(w http.ResponseWriter, r *http.Request) {
	call, err := h.VoiceUC.GetCall(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *VoiceHandler) ScheduleCall(w http.ResponseWriter, r *http.Request) {
	var input usecase.ScheduleCallInput
	if !decode(w, r, &input) {
		return
	}

	call, err := h.VoiceUC.ScheduleCall(r.Context(), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, call)
}

func (h *VoiceHandler) StartCall(w http.ResponseWriter, r *http.Request) {
	call, err := h.VoiceUC.StartCall(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *VoiceHandler) CompleteCall(w http.ResponseWriter, r *http.Request) {
	var input usecase.CompleteCallInput
	if !decode(w, r, &input) {
		return
	}

	call, err := h.VoiceUC.CompleteCall(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *VoiceHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	result, err := h.VoiceUC.Simulate(r.Context(), chi.URLParam(r, "id"))
	middleware.RecordVoiceCall("simulated", err)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// MakeCall (POST /api/voice-agent/make-call) queues the call and answers 202;
// the worker fills in the outcome.
func (h *VoiceHandler) MakeCall(w http.ResponseWriter, r *http.Request) {
	var req makeCallRequest
	if !decode(w, r, &req) {
		return
	}

	call, err := h.VoiceUC.MakeCall(r.Context(), req.ConvertID)
	middleware.RecordVoiceCall("dispatched", err)
	if err != nil {
		handleError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusAccepted, call)
}
