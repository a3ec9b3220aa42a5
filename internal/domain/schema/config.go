// Package schema declares the domain-specific configuration injected into
// the identity resolver and the field descriptor builder. The engine stays
// generic; everything table-specific lives here as data.
package schema

import (
	"strings"

	"github.com/shiftdesk/backend/pkg/constants"
)

// LookupRef names the lookup table behind a foreign-key column: which
// table supplies the valid values, which column is the key, and which
// column is displayed.
type LookupRef struct {
	Table       string
	KeyColumn   string
	LabelColumn string
}

// IntegerBounds constrains a bounded-integer override column.
type IntegerBounds struct {
	Min, Max int64
}

// Config carries the static per-table overrides. All lookups into it are
// case-insensitive, matching how the storage engine treats identifiers.
type Config struct {
	// IDColumns maps known tables to their identity column.
	IDColumns map[string]string

	// Lookups maps table -> foreign-key column -> referenced lookup table.
	Lookups map[string]map[string]LookupRef

	// TimeOfDayColumns lists columns stored via the fixed-date convention.
	TimeOfDayColumns map[string][]string

	// BoundedIntegers lists integer columns with explicit bounds.
	BoundedIntegers map[string]map[string]IntegerBounds
}

// IDColumn resolves the configured identity column for a table.
func (c *Config) IDColumn(table string) (string, bool) {
	for t, col := range c.IDColumns {
		if strings.EqualFold(t, table) {
			return col, true
		}
	}
	return "", false
}

// Lookup resolves the lookup reference behind a foreign-key column.
func (c *Config) Lookup(table, column string) (LookupRef, bool) {
	for t, cols := range c.Lookups {
		if !strings.EqualFold(t, table) {
			continue
		}
		for col, ref := range cols {
			if strings.EqualFold(col, column) {
				return ref, true
			}
		}
	}
	return LookupRef{}, false
}

// IsTimeOfDay reports whether a column stores a time-of-day value under
// the fixed-date convention.
func (c *Config) IsTimeOfDay(table, column string) bool {
	for t, cols := range c.TimeOfDayColumns {
		if !strings.EqualFold(t, table) {
			continue
		}
		for _, col := range cols {
			if strings.EqualFold(col, column) {
				return true
			}
		}
	}
	return false
}

// Bounds resolves the integer bounds override for a column.
func (c *Config) Bounds(table, column string) (IntegerBounds, bool) {
	for t, cols := range c.BoundedIntegers {
		if !strings.EqualFold(t, table) {
			continue
		}
		for col, b := range cols {
			if strings.EqualFold(col, column) {
				return b, true
			}
		}
	}
	return IntegerBounds{}, false
}

// ShiftSchedule returns the configuration for the shift-schedule domain:
// the identity columns of the known tables, the five foreign keys of the
// Shifts table with their lookup tables, and the Shift Durations overrides.
func ShiftSchedule() *Config {
	return &Config{
		IDColumns: map[string]string{
			constants.TableShifts:           constants.FieldShiftID,
			constants.TableDepartments:      constants.FieldDepartmentID,
			constants.TableManagers:         constants.FieldManagerID,
			constants.TableShiftDurations:   constants.FieldShiftDurationID,
			constants.TableShiftSupervisors: constants.FieldSupervisorID,
			constants.TableWorkerCounts:     constants.FieldWorkerCountID,
		},
		Lookups: map[string]map[string]LookupRef{
			constants.TableShifts: {
				constants.FieldDepartmentID: {
					Table:       constants.TableDepartments,
					KeyColumn:   constants.FieldDepartmentID,
					LabelColumn: constants.FieldDepartment,
				},
				constants.FieldManagerID: {
					Table:       constants.TableManagers,
					KeyColumn:   constants.FieldManagerID,
					LabelColumn: constants.FieldManagerName,
				},
				constants.FieldShiftDurationID: {
					Table:       constants.TableShiftDurations,
					KeyColumn:   constants.FieldShiftDurationID,
					LabelColumn: constants.FieldShiftHours,
				},
				constants.FieldSupervisorID: {
					Table:       constants.TableShiftSupervisors,
					KeyColumn:   constants.FieldSupervisorID,
					LabelColumn: constants.FieldSupervisorName,
				},
				constants.FieldWorkerCountID: {
					Table:       constants.TableWorkerCounts,
					KeyColumn:   constants.FieldWorkerCountID,
					LabelColumn: constants.FieldWorkerCount,
				},
			},
		},
		TimeOfDayColumns: map[string][]string{
			constants.TableShiftDurations: {
				constants.FieldShiftStart,
				constants.FieldShiftEnd,
			},
		},
		BoundedIntegers: map[string]map[string]IntegerBounds{
			constants.TableShiftDurations: {
				constants.FieldShiftHours: {Min: 0, Max: 24},
			},
		},
	}
}
