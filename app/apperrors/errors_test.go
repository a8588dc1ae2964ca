package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("bad"), want: KindValidation},
		{name: "not found", err: NotFound("missing"), want: KindNotFound},
		{name: "wrapped forbidden", err: fmt.Errorf("chain: %w", Forbidden("no")), want: KindForbidden},
		{name: "foreign error", err: errors.New("boom"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to save reaction", cause)

	assert.Equal(t, "failed to save reaction: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "missing", NotFound("missing").Error())
}

func TestIs(t *testing.T) {
	assert.True(t, Is(Unauthorized("no token"), KindUnauthorized))
	assert.False(t, Is(nil, KindUnauthorized))
	assert.False(t, Is(BadRequest("x", nil), KindValidation))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap("ignored", nil))

	nf := NotFound("Publication not found")
	assert.Same(t, nf, Wrap("lookup failed", nf))

	cause := errors.New("disk full")
	wrapped := Wrap("failed to save", cause)
	assert.Equal(t, KindInternal, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}
