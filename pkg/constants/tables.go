package constants

import "strings"

// SystemTablePrefix is the prefix the storage engine uses for its own
// internal tables. TempTablePrefix marks temporary/backup tables that are
// likewise hidden from table listings.
const (
	SystemTablePrefix = "sqlite_"
	TempTablePrefix   = "~"
)

// Domain table names. Several carry embedded spaces, which is why every
// generated identifier is bracket-quoted.
const (
	TableShifts           = "Shifts"
	TableDepartments      = "Departments"
	TableManagers         = "Managers"
	TableShiftDurations   = "Shift Durations"
	TableShiftSupervisors = "Shift Supervisors"
	TableWorkerCounts     = "Worker Counts"

	// TableUsers is the reserved credentials table, excluded from every
	// visible-table listing.
	TableUsers = "Users"
)

// Shifts columns
const (
	FieldShiftID         = "ShiftID"
	FieldShiftDate       = "ShiftDate"
	FieldDepartmentID    = "DepartmentID"
	FieldManagerID       = "ManagerID"
	FieldShiftDurationID = "ShiftDurationID"
	FieldSupervisorID    = "SupervisorID"
	FieldWorkerCountID   = "WorkerCountID"
)

// Lookup table columns
const (
	FieldDepartment     = "Department"
	FieldManagerName    = "ManagerName"
	FieldSupervisorName = "SupervisorName"
	FieldWorkerCount    = "WorkerCount"
)

// Shift Durations columns
const (
	FieldShiftStart = "ShiftStart"
	FieldShiftEnd   = "ShiftEnd"
	FieldShiftHours = "ShiftHours"
)

// Users columns
const (
	FieldUsername     = "Username"
	FieldPasswordHash = "PasswordHash"
)

// IsSystemTable checks if a table name belongs to the storage engine or is
// a hidden temporary table.
func IsSystemTable(tableName string) bool {
	return strings.HasPrefix(tableName, SystemTablePrefix) ||
		strings.HasPrefix(tableName, TempTablePrefix)
}
