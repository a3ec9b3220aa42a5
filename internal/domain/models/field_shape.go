package models

import "time"

// ShapeKind tags the closed set of field shapes. Consumers switch
// exhaustively on it when extracting or serializing values; there is no
// open-ended widget inspection.
type ShapeKind string

const (
	ShapeText      ShapeKind = "text"
	ShapeInteger   ShapeKind = "integer"
	ShapeDecimal   ShapeKind = "decimal"
	ShapeBoolean   ShapeKind = "boolean"
	ShapeTimestamp ShapeKind = "timestamp"
	ShapeTimeOfDay ShapeKind = "time_of_day"
	ShapeLookup    ShapeKind = "lookup"
)

// FieldShape describes how a single column accepts a value, independent of
// any widget choice. Only the fields relevant to Kind are populated.
type FieldShape struct {
	Column   string
	Kind     ShapeKind
	Required bool

	// ReadOnly marks the identity column: displayed, never edited.
	ReadOnly bool

	// Default is the pre-filled value: the next surrogate key on the id
	// column of a new record, or the current value when editing.
	Default any

	// Integer bounds (ShapeInteger).
	Min, Max int64

	// Fraction digits (ShapeDecimal).
	Scale int

	// Calendar bounds (ShapeTimestamp).
	MinDate, MaxDate time.Time

	// Lookup entries and the index of the pre-selected entry, -1 when
	// nothing is selected (ShapeLookup).
	Entries  []LookupEntry
	Selected int
}
