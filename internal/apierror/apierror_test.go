package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationFormatting(t *testing.T) {
	err := Validation("puntaje %d fuera de rango", 7)
	assert.Equal(t, "puntaje 7 fuera de rango", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestNotFoundFormatting(t *testing.T) {
	err := NotFound("orden %d no encontrada", 42)
	assert.Equal(t, "orden 42 no encontrada", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestIsHelpersThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("actualizando proveedor: %w", NotFound("proveedor 3 no encontrado"))
	assert.True(t, IsNotFound(wrapped))

	wrapped = fmt.Errorf("validando orden: %w", Validation("items requeridos"))
	assert.True(t, IsValidation(wrapped))
}

func TestRollbackErrorDelegatesToOriginal(t *testing.T) {
	original := NotFound("tecnico 9 no encontrado")
	err := &RollbackError{Original: original, Rollback: errors.New("connection reset")}

	assert.Equal(t, original.Error(), err.Error())
	assert.True(t, errors.Is(err, original))
	assert.True(t, IsNotFound(err), "la taxonomia debe verse a traves del rollback fallido")
}
