package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheErrorMessage(t *testing.T) {
	err := NewCacheError(ErrorTypeCorrupt, "3x3-stm.bin", "checksum mismatch", nil)
	assert.Equal(t, "solver cache error [CORRUPT] for key '3x3-stm.bin': checksum mismatch", err.Error())

	err = NewValidationError("window must be positive", nil)
	assert.Equal(t, "solver cache error [VALIDATION]: window must be positive", err.Error())
}

func TestCacheErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewPersistenceError("3x3-stm.bin", "cannot write table file", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestCacheErrorIsMatchesOnType(t *testing.T) {
	a := NewNotFoundError("2x2-mtm.bin")
	b := NewNotFoundError("3x3-stm.bin")
	assert.ErrorIs(t, a, b)

	c := NewCorruptError("2x2-mtm.bin", nil)
	assert.NotErrorIs(t, a, c)
}

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    string
	}{
		{ErrorTypeUnsupported, "UNSUPPORTED"},
		{ErrorTypeCorrupt, "CORRUPT"},
		{ErrorTypePersistence, "PERSISTENCE"},
		{ErrorTypeNotFound, "NOT_FOUND"},
		{ErrorTypeMalformed, "MALFORMED"},
		{ErrorTypeSolveFailed, "SOLVE_FAILED"},
		{ErrorTypeValidation, "VALIDATION"},
		{ErrorTypeConnection, "CONNECTION"},
		{ErrorType(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.errType.String())
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"unsupported", NewUnsupportedError("8x8-mtm.bin", "no strategy"), IsUnsupportedError, true},
		{"not found", NewNotFoundError("k"), IsNotFoundError, true},
		{"malformed", NewMalformedError("bad sequence", nil), IsMalformedError, true},
		{"validation", NewValidationError("bad input", nil), IsValidationError, true},
		{"persistence", NewPersistenceError("k", "m", nil), IsPersistenceError, true},
		{"wrapped", fmt.Errorf("outer: %w", NewNotFoundError("k")), IsNotFoundError, true},
		{"wrong type", NewNotFoundError("k"), IsValidationError, false},
		{"plain error", errors.New("plain"), IsNotFoundError, false},
		{"nil", nil, IsNotFoundError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred(tt.err))
		})
	}
}
