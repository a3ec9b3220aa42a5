package services

import (
	"context"
	"strings"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/domain/schema"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
)

// IdentityService resolves which column identifies a row in a table and
// computes the next available surrogate key.
type IdentityService struct {
	cfg     *schema.Config
	schemas *persistence.SchemaRepository
	records *persistence.RecordRepository
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(cfg *schema.Config, schemas *persistence.SchemaRepository, records *persistence.RecordRepository) *IdentityService {
	return &IdentityService{cfg: cfg, schemas: schemas, records: records}
}

// GetIDColumn resolves the identity column of a table. Known tables come
// from the injected configuration; unknown tables fall back to the first
// column whose name contains "ID" (case-insensitive, schema order). When
// neither applies the table is unusable and the error is fatal for it.
func (s *IdentityService) GetIDColumn(ctx context.Context, table string) (string, error) {
	if col, ok := s.cfg.IDColumn(table); ok {
		return col, nil
	}

	columns, err := s.schemas.GetColumns(ctx, table)
	if err != nil {
		return "", err
	}
	for _, col := range columns {
		if strings.Contains(strings.ToUpper(col.Name), "ID") {
			return col.Name, nil
		}
	}

	return "", apperrors.NewSchemaError(table, "cannot determine identity column")
}

// Resolve returns the full table identity.
func (s *IdentityService) Resolve(ctx context.Context, table string) (models.TableIdentity, error) {
	idColumn, err := s.GetIDColumn(ctx, table)
	if err != nil {
		return models.TableIdentity{}, err
	}
	return models.TableIdentity{TableName: table, IDColumn: idColumn}, nil
}

// GetNextID computes max(existing ids) + 1, or 1 for an empty table.
// Deliberately unguarded against concurrent writers: the surrounding
// system is single-user per database file.
func (s *IdentityService) GetNextID(ctx context.Context, table string) (int64, error) {
	idColumn, err := s.GetIDColumn(ctx, table)
	if err != nil {
		return 0, err
	}

	max, found, err := s.records.MaxID(ctx, table, idColumn)
	if err != nil {
		return 0, err
	}
	if !found {
		return 1, nil
	}
	return max + 1, nil
}
