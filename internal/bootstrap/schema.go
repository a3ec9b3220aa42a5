// Package bootstrap creates the shift-schedule tables in a fresh database
// file. Existing tables are left untouched; there is no migration.
package bootstrap

import (
	"fmt"

	"github.com/shiftdesk/backend/internal/infrastructure/database"
)

// Identity columns are declared NOT NULL like every other required
// column, so the schema catalog reports them uniformly. Surrogate keys
// are assigned by the identity resolver, not by the engine.
var tableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS [Departments] (
		[DepartmentID] INTEGER NOT NULL PRIMARY KEY,
		[Department] TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS [Managers] (
		[ManagerID] INTEGER NOT NULL PRIMARY KEY,
		[ManagerName] TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS [Shift Durations] (
		[ShiftDurationID] INTEGER NOT NULL PRIMARY KEY,
		[ShiftStart] DATETIME NOT NULL,
		[ShiftEnd] DATETIME NOT NULL,
		[ShiftHours] INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS [Shift Supervisors] (
		[SupervisorID] INTEGER NOT NULL PRIMARY KEY,
		[SupervisorName] TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS [Worker Counts] (
		[WorkerCountID] INTEGER NOT NULL PRIMARY KEY,
		[WorkerCount] INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS [Shifts] (
		[ShiftID] INTEGER NOT NULL PRIMARY KEY,
		[ShiftDate] DATETIME NOT NULL,
		[DepartmentID] INTEGER NOT NULL,
		[ManagerID] INTEGER NOT NULL,
		[ShiftDurationID] INTEGER NOT NULL,
		[SupervisorID] INTEGER NOT NULL,
		[WorkerCountID] INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS [Users] (
		[Username] TEXT NOT NULL,
		[PasswordHash] TEXT NOT NULL
	)`,
}

// EnsureSchema creates any missing domain table, including the reserved
// credentials table.
func EnsureSchema(opener database.Opener) error {
	db, err := opener.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, ddl := range tableDefinitions {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
