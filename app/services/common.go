package services

import (
	"errors"

	"github.com/goccy/go-json"

	"travelshare/app/apperrors"
	"travelshare/app/repositories"
)

// storeError converts a repository error into an apperrors value.
func storeError(err error, notFound, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound(notFound)
	}
	return apperrors.Wrap(action, err)
}

// mergePatch applies a partial JSON document onto dst. Fields absent from
// patch keep their current value.
func mergePatch(dst interface{}, patch []byte) error {
	if len(patch) == 0 {
		return nil
	}
	if err := json.Unmarshal(patch, dst); err != nil {
		return apperrors.BadRequest("Malformed JSON body", err)
	}
	return nil
}
