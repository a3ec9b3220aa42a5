package services

import (
	"context"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
)

// PersistenceService is the write path: the required-field gate and type
// validation run first, so a rejected record never opens a transaction.
type PersistenceService struct {
	records    *persistence.RecordRepository
	identity   *IdentityService
	validation *ValidationService
}

// NewPersistenceService creates a new PersistenceService
func NewPersistenceService(records *persistence.RecordRepository, identity *IdentityService, validation *ValidationService) *PersistenceService {
	return &PersistenceService{records: records, identity: identity, validation: validation}
}

// Insert validates and persists a new record transactionally. Every
// required column of the table must carry a non-empty value.
func (s *PersistenceService) Insert(ctx context.Context, table string, values models.RecordValues) error {
	missing, err := s.validation.MissingRequired(ctx, table, values)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		failures := make(apperrors.ValidationErrors, len(missing))
		for i, column := range missing {
			failures[i] = apperrors.NewValidationError(column, "is required")
		}
		return failures
	}

	normalized, err := s.validation.Validate(ctx, table, values)
	if err != nil {
		return err
	}

	return s.records.Insert(ctx, table, normalized)
}

// Update validates and rewrites the row identified by the record's id
// value. Required columns are only checked when supplied: an update may
// carry a subset of columns, but cannot blank out a required one. Returns
// whether any row was affected; zero rows is a soft failure.
func (s *PersistenceService) Update(ctx context.Context, table string, values models.RecordValues) (bool, error) {
	idColumn, err := s.identity.GetIDColumn(ctx, table)
	if err != nil {
		return false, err
	}

	missing, err := s.validation.MissingRequired(ctx, table, values)
	if err != nil {
		return false, err
	}
	var failures apperrors.ValidationErrors
	for _, column := range missing {
		if _, supplied := values[column]; supplied {
			failures = append(failures, apperrors.NewValidationError(column, "is required"))
		}
	}
	if len(failures) > 0 {
		return false, failures
	}

	normalized, err := s.validation.Validate(ctx, table, values)
	if err != nil {
		return false, err
	}

	return s.records.Update(ctx, table, normalized, idColumn)
}

// Delete removes the row the id value selects.
func (s *PersistenceService) Delete(ctx context.Context, table string, idValue any) error {
	idColumn, err := s.identity.GetIDColumn(ctx, table)
	if err != nil {
		return err
	}
	return s.records.Delete(ctx, table, idColumn, idValue)
}

// Read returns every row of a table.
func (s *PersistenceService) Read(ctx context.Context, table string) (*models.Rows, error) {
	return s.records.ReadAll(ctx, table)
}

// Query executes ad-hoc SQL through the record store's read capability.
func (s *PersistenceService) Query(ctx context.Context, sqlText string, args ...any) (*models.Rows, error) {
	return s.records.Query(ctx, sqlText, args...)
}
