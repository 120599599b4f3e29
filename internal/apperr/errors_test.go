package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Authentication("who"), http.StatusUnauthorized},
		{Authorization("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Conflict("dup"), http.StatusConflict},
		{From(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Status(), string(tt.err.Kind))
	}
}

func TestIsMatchesKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create mapping: %w", Conflict("already assigned"))

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindConflict, From(err).Kind)
}

func TestFromKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	e := From(cause)

	assert.Equal(t, KindInternal, e.Kind)
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "Internal server error.: connection refused", e.Error())
}
