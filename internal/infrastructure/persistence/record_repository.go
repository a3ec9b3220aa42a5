package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shiftdesk/backend/internal/domain/models"
	"github.com/shiftdesk/backend/internal/infrastructure/database"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
	"github.com/shiftdesk/backend/pkg/query"
)

// RecordRepository executes CRUD statements against runtime-discovered
// tables. Every operation opens its own connection and releases it on
// every exit path; no state is shared across calls.
type RecordRepository struct {
	opener database.Opener
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(opener database.Opener) *RecordRepository {
	return &RecordRepository{opener: opener}
}

// Insert writes one record inside a transaction. On failure the
// transaction is rolled back and a wrapped error names the target table.
func (r *RecordRepository) Insert(ctx context.Context, table string, values models.RecordValues) error {
	db, err := r.opener.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	q := query.BuildInsert(table, values)
	err = withTransaction(db, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx, q.SQL, q.Params...)
		return execErr
	})
	if err != nil {
		return apperrors.NewPersistenceError(table, "insert", err)
	}
	return nil
}

// Update rewrites every supplied column except the identity column on the
// row the identity value selects. The id value must be present in the map.
// Returns whether at least one row was affected; zero rows is a soft
// failure for the caller to interpret, not an error.
func (r *RecordRepository) Update(ctx context.Context, table string, values models.RecordValues, idColumn string) (bool, error) {
	q, err := query.BuildUpdate(table, values, idColumn)
	if err != nil {
		return false, fmt.Errorf("cannot update table %s: %w", table, err)
	}

	db, err := r.opener.Open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	var affected int64
	err = withTransaction(db, func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx, q.SQL, q.Params...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		return false, apperrors.NewPersistenceError(table, "update", err)
	}
	return affected > 0, nil
}

// Delete removes the row the identity value selects. A single statement,
// so no explicit transaction is needed.
func (r *RecordRepository) Delete(ctx context.Context, table, idColumn string, idValue any) error {
	db, err := r.opener.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	q := query.BuildDelete(table, idColumn, idValue)
	if _, err := db.ExecContext(ctx, q.SQL, q.Params...); err != nil {
		return apperrors.NewPersistenceError(table, "delete", err)
	}
	return nil
}

// ReadAll returns every row of a table in natural row order.
func (r *RecordRepository) ReadAll(ctx context.Context, table string) (*models.Rows, error) {
	db, err := r.opener.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query.SelectAll(table))
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", table, err)
	}
	defer rows.Close()

	return query.ScanRows(rows)
}

// MaxID reads the maximum value of the identity column. found is false
// when the table holds no rows.
func (r *RecordRepository) MaxID(ctx context.Context, table, idColumn string) (max int64, found bool, err error) {
	db, err := r.opener.Open()
	if err != nil {
		return 0, false, err
	}
	defer db.Close()

	var result sql.NullInt64
	if err := db.QueryRowContext(ctx, query.SelectMax(table, idColumn)).Scan(&result); err != nil {
		return 0, false, fmt.Errorf("reading max id of table %s: %w", table, err)
	}
	return result.Int64, result.Valid, nil
}

// Query executes caller-supplied SQL verbatim and returns the tabular
// result. Used by the reporting collaborator; the SQL is not validated or
// sanitized here.
func (r *RecordRepository) Query(ctx context.Context, sqlText string, args ...any) (*models.Rows, error) {
	db, err := r.opener.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	return query.ScanRows(rows)
}
