package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Unwrap(t *testing.T) {
	err := fmt.Errorf("crear pedido: %w", NewValidationError("items", "al menos una línea"))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "items", ve.Fields[0].Path)
	assert.Equal(t, "entrada inválida", (&ValidationError{}).Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("personas", "supera la capacidad de la mesa")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrConflict)
}
