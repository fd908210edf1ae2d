package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolations(t *testing.T) {
	var v Violations
	assert.NoError(t, v.Err())

	v.Required("nombre", "   ")
	v.Check(3 <= 20, "capacidad", "fuera de rango")
	v.Check(25 <= 20, "capacidad", "debe estar entre 1 y 20")

	err := v.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var ve *ValidationError
	require.True(t, errors.As(fmt.Errorf("crear mesa: %w", err), &ve))
	assert.Equal(t, []FieldError{
		{Path: "nombre", Message: "es obligatorio"},
		{Path: "capacidad", Message: "debe estar entre 1 y 20"},
	}, ve.Fields)
	assert.Contains(t, err.Error(), "capacidad: debe estar entre 1 y 20")
}

func TestViolations_Helpers(t *testing.T) {
	var v Violations
	v.Email("email", "ana@resto.co")
	v.Range("personas", 12, 1, 30)
	v.OneOf("rol", "mesero", []string{"admin", "mesero"})
	require.NoError(t, v.Err())

	v.Email("email", "no-es-email")
	v.Email("email2", "Ana <ana@resto.co>")
	v.Range("personas", 31, 1, 30)
	v.OneOf("rol", "gerente", []string{"admin", "mesero"})

	var ve *ValidationError
	require.ErrorAs(t, v.Err(), &ve)
	require.Len(t, ve.Fields, 4)
	assert.Equal(t, "debe estar entre 1 y 30", ve.Fields[2].Message)
	assert.Equal(t, "debe ser uno de: admin, mesero", ve.Fields[3].Message)
}
