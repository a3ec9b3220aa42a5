// Package query generates parameterized SQL for tables whose structure is
// only known at runtime. Every identifier is bracket-quoted so names with
// embedded spaces survive intact.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shiftdesk/backend/internal/domain/models"
)

// ErrMissingID is returned when an UPDATE cannot identify its target row.
var ErrMissingID = errors.New("id value missing from record values")

// Result is a built SQL statement with its bound parameters.
type Result struct {
	SQL    string
	Params []any
}

// Quote bracket-quotes an identifier.
func Quote(name string) string {
	return "[" + name + "]"
}

// sortedColumns fixes the column order of a generated statement. Map
// iteration order is random; the SQL text must be deterministic.
func sortedColumns(values models.RecordValues) []string {
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// BuildInsert names every supplied column explicitly:
// INSERT INTO [t] ([a], [b]) VALUES (?, ?)
func BuildInsert(table string, values models.RecordValues) Result {
	cols := sortedColumns(values)

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	params := make([]any, len(cols))
	for i, col := range cols {
		quoted[i] = Quote(col)
		placeholders[i] = "?"
		params[i] = values[col]
	}

	return Result{
		SQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			Quote(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", ")),
		Params: params,
	}
}

// BuildUpdate sets every supplied column except the id column, which moves
// into the WHERE clause:
// UPDATE [t] SET [a] = ?, [b] = ? WHERE [id] = ?
// Fails with ErrMissingID when the id value is absent from the map.
func BuildUpdate(table string, values models.RecordValues, idColumn string) (Result, error) {
	cols := sortedColumns(values)

	var idValue any
	idFound := false
	setParts := make([]string, 0, len(cols))
	params := make([]any, 0, len(cols))
	for _, col := range cols {
		if strings.EqualFold(col, idColumn) {
			idValue = values[col]
			idFound = true
			continue
		}
		setParts = append(setParts, Quote(col)+" = ?")
		params = append(params, values[col])
	}

	if !idFound || idValue == nil {
		return Result{}, ErrMissingID
	}
	params = append(params, idValue)

	return Result{
		SQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
			Quote(table), strings.Join(setParts, ", "), Quote(idColumn)),
		Params: params,
	}, nil
}

// BuildDelete targets one row by its identity column.
func BuildDelete(table, idColumn string, idValue any) Result {
	return Result{
		SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s = ?", Quote(table), Quote(idColumn)),
		Params: []any{idValue},
	}
}

// SelectAll reads a whole table in natural row order.
func SelectAll(table string) string {
	return fmt.Sprintf("SELECT * FROM %s", Quote(table))
}

// SelectMax reads the maximum value of one column.
func SelectMax(table, column string) string {
	return fmt.Sprintf("SELECT MAX(%s) FROM %s", Quote(column), Quote(table))
}
