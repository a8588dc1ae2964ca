package controllers

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"travelshare/app/apperrors"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// readBody returns the raw request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.BadRequest("Unable to read request body", err)
	}
	return body, nil
}

// decodeBody decodes the JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequest("Malformed JSON body", err)
	}
	return nil
}
