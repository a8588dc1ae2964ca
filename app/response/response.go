// Package response writes the JSON envelope shared by every API handler:
//
//	{"success": true, "message": "...", "data": ...}
//	{"success": false, "message": "...", "data": null, "errors": [{"field": "...", "msg": "..."}]}
package response

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"travelshare/app/apperrors"
	"travelshare/app/logging"
)

type Envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    interface{}            `json:"data"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// Success writes data with status. 204 responses carry no body.
func Success(w http.ResponseWriter, status int, message string, data interface{}) {
	if message == "" {
		message = "Success"
	}
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// OK writes a 200 envelope.
func OK(w http.ResponseWriter, data interface{}) {
	Success(w, http.StatusOK, "", data)
}

// Error writes err with the status of its kind. Internal errors are logged
// and their cause is not exposed.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(apperrors.KindOf(err))

	env := Envelope{Success: false, Message: err.Error()}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		env.Message = appErr.Message
		env.Errors = appErr.Details
	}

	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		if appErr == nil {
			env.Message = http.StatusText(status)
		}
	}
	write(w, status, env)
}

// StatusFor maps an error kind to an HTTP status.
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation, apperrors.KindBadRequest:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, status int, env Envelope) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// Fail writes an error envelope with an explicit status.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{Success: false, Message: message})
}
