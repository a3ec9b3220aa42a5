package errors

import (
	"errors"
	"fmt"
	"strings"
)

// AppError is the base interface for all application errors
type AppError interface {
	error
	Code() string
}

// ConnectivityError reports a failure to open or communicate with the
// storage engine. The operation is aborted and never retried.
type ConnectivityError struct {
	Path  string
	Cause error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach database '%s': %v", e.Path, e.Cause)
}

func (e *ConnectivityError) Code() string {
	return "CONNECTIVITY"
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// NewConnectivityError creates a new ConnectivityError
func NewConnectivityError(path string, cause error) *ConnectivityError {
	return &ConnectivityError{Path: path, Cause: cause}
}

// SchemaError reports an unresolvable schema question, such as a table
// whose identity column cannot be determined. Fatal for that table; no
// fallback is synthesized.
type SchemaError struct {
	Table   string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error on table '%s': %s", e.Table, e.Message)
}

func (e *SchemaError) Code() string {
	return "SCHEMA_ERROR"
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(table, message string) *SchemaError {
	return &SchemaError{Table: table, Message: message}
}

// ValidationError represents one invalid column value. Expected and Actual
// carry semantic type names when the failure is a type mismatch.
type ValidationError struct {
	Column   string
	Expected string
	Actual   string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("validation error on column '%s': expected %s, got %s", e.Column, e.Expected, e.Actual)
	}
	return fmt.Sprintf("validation error on column '%s': %s", e.Column, e.Message)
}

func (e *ValidationError) Code() string {
	return "VALIDATION_ERROR"
}

// NewValidationError creates a new ValidationError
func NewValidationError(column, message string) *ValidationError {
	return &ValidationError{Column: column, Message: message}
}

// NewTypeMismatchError creates a ValidationError for a type mismatch
func NewTypeMismatchError(column, expected, actual string) *ValidationError {
	return &ValidationError{Column: column, Expected: expected, Actual: actual}
}

// ValidationErrors collects every failure of a single submission so the
// caller can present them together instead of stopping at the first.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e ValidationErrors) Code() string {
	return "VALIDATION_ERROR"
}

// PersistenceError wraps a storage failure during a write with the target
// table's name. The surrounding transaction has already been rolled back.
type PersistenceError struct {
	Table string
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed on table '%s': %v", e.Op, e.Table, e.Cause)
}

func (e *PersistenceError) Code() string {
	return "PERSISTENCE_ERROR"
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(table, op string, cause error) *PersistenceError {
	return &PersistenceError{Table: table, Op: op, Cause: cause}
}

// Helper functions for error checking

// IsConnectivity checks if an error is a ConnectivityError
func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}

// IsSchema checks if an error is a SchemaError
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var ves ValidationErrors
	return errors.As(err, &ves)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// AsValidationErrors extracts the collected per-column failures from an
// error, wrapping a lone ValidationError into a one-element slice.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ves ValidationErrors
	if errors.As(err, &ves) {
		return ves, true
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ValidationErrors{ve}, true
	}
	return nil, false
}
