package query

import (
	"database/sql"

	"github.com/shiftdesk/backend/internal/domain/models"
)

// ScanRows drains SQL rows into a tabular result, preserving column order.
// Raw byte slices become strings; integer and float values pass through as
// the driver reports them.
func ScanRows(rows *sql.Rows) (*models.Rows, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &models.Rows{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		record := make(models.RecordValues, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		result.Records = append(result.Records, record)
	}

	return result, rows.Err()
}
