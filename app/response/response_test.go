package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelshare/app/apperrors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Publication created successfully", map[string]string{"id": "P1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Publication created successfully", body["message"])
	assert.Equal(t, "P1", body["data"].(map[string]interface{})["id"])
	assert.NotContains(t, body, "errors")
}

func TestOKDefaultsMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, []string{})

	body := decode(t, rec)
	assert.Equal(t, "Success", body["message"])
	assert.Equal(t, []interface{}{}, body["data"])
}

func TestNoContentHasNoBody(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusNoContent, "Publication deleted successfully", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.Validation("Validation failed", apperrors.FieldError{Field: "titulo", Msg: "titulo is required"}), http.StatusBadRequest, "Validation failed"},
		{"bad request", apperrors.BadRequest("Malformed JSON body", errors.New("eof")), http.StatusBadRequest, "Malformed JSON body"},
		{"unauthorized", apperrors.Unauthorized("No token provided"), http.StatusUnauthorized, "No token provided"},
		{"forbidden", apperrors.Forbidden("No plan provided"), http.StatusForbidden, "No plan provided"},
		{"not found", apperrors.NotFound("Publication not found"), http.StatusNotFound, "Publication not found"},
		{"internal", apperrors.Internal("Error fetching publications", errors.New("io")), http.StatusInternalServerError, "Error fetching publications"},
		{"foreign", errors.New("secret detail"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/publications", nil)
			Error(rec, req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
			assert.Nil(t, body["data"])
		})
	}
}

func TestErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/publications", nil)
	Error(rec, req, apperrors.Validation("Validation failed", apperrors.FieldError{Field: "titulo", Msg: "titulo is required"}))

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "titulo", env.Errors[0].Field)
}
