package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/infrastructure/database"
	"github.com/shiftdesk/backend/pkg/constants"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
	"github.com/shiftdesk/backend/pkg/fieldtypes"
	"github.com/shiftdesk/backend/pkg/query"
)

// SchemaRepository reads engine-provided table metadata. Descriptors are
// rebuilt on every call; nothing is cached.
type SchemaRepository struct {
	opener database.Opener
}

// NewSchemaRepository creates a new SchemaRepository
func NewSchemaRepository(opener database.Opener) *SchemaRepository {
	return &SchemaRepository{opener: opener}
}

// GetColumns returns the ordered column descriptors of a table: name,
// storage type parsed from the declared type, and whether the column
// disallows null.
func (r *SchemaRepository) GetColumns(ctx context.Context, table string) ([]models.ColumnDescriptor, error) {
	db, err := r.opener.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// PRAGMA arguments cannot be bound; the table name is bracket-quoted.
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", query.Quote(table)))
	if err != nil {
		return nil, fmt.Errorf("reading schema of table %s: %w", table, err)
	}
	defer rows.Close()

	var descriptors []models.ColumnDescriptor
	for rows.Next() {
		var (
			cid      int
			name     string
			declared string
			notNull  int
			dflt     sql.NullString
			pk       int
		)
		if err := rows.Scan(&cid, &name, &declared, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("reading schema of table %s: %w", table, err)
		}

		storage := fieldtypes.ParseDeclaredType(declared)
		descriptors = append(descriptors, models.ColumnDescriptor{
			Name:        name,
			StorageType: storage,
			Semantic:    fieldtypes.SemanticOf(storage),
			Required:    notNull != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading schema of table %s: %w", table, err)
	}

	if len(descriptors) == 0 {
		return nil, apperrors.NewSchemaError(table, "table does not exist or has no columns")
	}
	return descriptors, nil
}

// ListTables returns every base table, filtering out the engine's own
// tables and hidden temporary tables by name prefix.
func (r *SchemaRepository) ListTables(ctx context.Context) ([]string, error) {
	db, err := r.opener.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing tables: %w", err)
		}
		if constants.IsSystemTable(name) {
			continue
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// GetVisibleTables lists the tables exposed to the user: base tables minus
// the reserved credentials table.
func (r *SchemaRepository) GetVisibleTables(ctx context.Context) ([]string, error) {
	tables, err := r.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	visible := tables[:0]
	for _, name := range tables {
		if strings.EqualFold(name, constants.TableUsers) {
			continue
		}
		visible = append(visible, name)
	}
	return visible, nil
}
