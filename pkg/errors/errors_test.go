package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "CONNECTIVITY", NewConnectivityError("app.db", stderrors.New("locked")).Code())
	assert.Equal(t, "SCHEMA_ERROR", NewSchemaError("Shifts", "no columns").Code())
	assert.Equal(t, "VALIDATION_ERROR", NewValidationError("ShiftDate", "is required").Code())
	assert.Equal(t, "PERSISTENCE_ERROR", NewPersistenceError("Shifts", "insert", stderrors.New("boom")).Code())
}

func TestIsHelpers(t *testing.T) {
	connectivity := NewConnectivityError("app.db", stderrors.New("locked"))
	schema := NewSchemaError("Shifts", "no columns")
	validation := NewValidationError("ShiftDate", "is required")
	persistence := NewPersistenceError("Shifts", "insert", stderrors.New("boom"))

	assert.True(t, IsConnectivity(connectivity))
	assert.True(t, IsSchema(schema))
	assert.True(t, IsValidation(validation))
	assert.True(t, IsPersistence(persistence))

	// Helpers see through wrapping.
	assert.True(t, IsPersistence(fmt.Errorf("update record: %w", persistence)))
	assert.True(t, IsValidation(fmt.Errorf("insert record: %w", ValidationErrors{validation})))

	assert.False(t, IsConnectivity(schema))
	assert.False(t, IsValidation(persistence))
	assert.False(t, IsSchema(stderrors.New("plain")))
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		NewTypeMismatchError("WorkerCount", "Integer", "Text"),
		NewValidationError("ShiftDate", "is required"),
	}

	assert.Equal(t,
		"validation error on column 'WorkerCount': expected Integer, got Text; "+
			"validation error on column 'ShiftDate': is required",
		errs.Error())
}

func TestAsValidationErrors(t *testing.T) {
	single := NewValidationError("ShiftDate", "is required")

	extracted, ok := AsValidationErrors(fmt.Errorf("insert: %w", single))
	require.True(t, ok)
	require.Len(t, extracted, 1)
	assert.Equal(t, "ShiftDate", extracted[0].Column)

	many := ValidationErrors{single, NewValidationError("ManagerID", "is required")}
	extracted, ok = AsValidationErrors(many)
	require.True(t, ok)
	assert.Len(t, extracted, 2)

	_, ok = AsValidationErrors(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	assert.ErrorIs(t, NewPersistenceError("Shifts", "insert", cause), cause)
	assert.ErrorIs(t, NewConnectivityError("app.db", cause), cause)
}
