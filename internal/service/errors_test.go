package service

import (
	"errors"
	"testing"

	"github.com/phrazzld/deck-api/internal/domain"
	"github.com/phrazzld/deck-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestDeckServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		message  string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "draw_cards",
			message:  "draw rejected",
			err:      domain.ErrInsufficientCards,
			expected: "deck service draw_cards failed: draw rejected: not enough cards remaining",
		},
		{
			name:     "without underlying error",
			op:       "init",
			message:  "deck store cannot be nil",
			expected: "deck service init failed: deck store cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewDeckServiceError(tt.op, tt.message, tt.err).Error())
		})
	}
}

func TestDeckServiceError_Unwrap(t *testing.T) {
	err := NewDeckServiceError("create_deck", "invalid card code", &domain.CardCodeError{Code: "ZZ"})

	assert.True(t, errors.Is(err, domain.ErrInvalidCardCode))

	var codeErr *domain.CardCodeError
	assert.True(t, errors.As(err, &codeErr))
	assert.Equal(t, "ZZ", codeErr.Code)

	var svcErr *DeckServiceError
	wrapped := NewDeckServiceError("get_deck", "lookup failed", store.ErrDeckNotFound)
	assert.True(t, errors.As(wrapped, &svcErr))
	assert.Equal(t, "get_deck", svcErr.Operation)
	assert.True(t, errors.Is(wrapped, store.ErrNotFound))

	assert.Nil(t, NewDeckServiceError("init", "missing", nil).Unwrap())
}
