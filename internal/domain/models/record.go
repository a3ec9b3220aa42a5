package models

import "github.com/shiftdesk/backend/pkg/fieldtypes"

// RecordValues maps column names to semantically typed values. A value is
// one of int/int64, float64, bool, time.Time, string, or nil. It is both
// the payload for insert/update and the snapshot of a row being edited.
type RecordValues map[string]any

// Clone returns a shallow copy. Validation normalizes into a copy so the
// caller-owned map is never mutated.
func (r RecordValues) Clone() RecordValues {
	out := make(RecordValues, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ColumnDescriptor describes one discovered table column. Descriptors are
// rebuilt on every schema query and immutable once built; nothing caches
// them across operations.
type ColumnDescriptor struct {
	Name        string
	StorageType fieldtypes.StorageType
	Semantic    fieldtypes.SemanticType
	Required    bool // true iff the underlying column disallows null
}

// TableIdentity pairs a table with its resolved identity column. Every
// table the system operates on must resolve to exactly one id column.
type TableIdentity struct {
	TableName string
	IDColumn  string
}

// LookupEntry is one (key, display label) pair read from a lookup table.
// Ordering follows the table's natural row order; keys are not dedup'd.
type LookupEntry struct {
	Key   int64
	Label string
}

// Rows is a tabular query result: ordered column names plus one
// RecordValues per row.
type Rows struct {
	Columns []string
	Records []RecordValues
}
