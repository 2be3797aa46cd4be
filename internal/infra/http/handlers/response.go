package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type errorResponse struct {
	Error     string                    `json:"error"`
	Message   string                    `json:"message"`
	Fields    []usecase.ValidationError `json:"fields,omitempty"`
	Stage     string                    `json:"stage,omitempty"`
	Completed []string                  `json:"completed,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

// decode rejects unknown fields so typos in a patch body do not pass silently.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, usecase.CodeInvalidInput, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// handleError maps use case errors onto status codes. Technical failures are
// logged and answered with a generic message.
func handleError(w http.ResponseWriter, log logger.Logger, err error) {
	var verrs usecase.ValidationErrors
	if errors.As(err, &verrs) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   usecase.CodeInvalidInput,
			Message: "validation failed",
			Fields:  verrs,
		})
		return
	}

	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeError(w, domainStatus(de.Code), de.Code, de.Message)
		return
	}

	code := usecase.CodeStorage
	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		code = te.Code
	}
	body := errorResponse{Error: code, Message: "internal error"}

	// a failed seed stage leaves earlier stages written; say which ones
	var se *usecase.StageError
	if errors.As(err, &se) {
		log = log.WithFields(map[string]interface{}{
			"stage":     se.Stage,
			"completed": strings.Join(se.Completed, ","),
		})
		body.Message = "seeding stopped at stage " + se.Stage
		body.Stage = se.Stage
		body.Completed = se.Completed
	}
	log.WithField("error", err.Error()).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, body)
}

func domainStatus(code string) int {
	switch code {
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeUnauthorized:
		return http.StatusUnauthorized
	case usecase.CodeAlreadySeeded, usecase.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
