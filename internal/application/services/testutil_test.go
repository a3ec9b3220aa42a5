package services_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/backend/internal/application/services"
	"github.com/shiftdesk/backend/internal/bootstrap"
	"github.com/shiftdesk/backend/internal/domain/schema"
	"github.com/shiftdesk/backend/internal/infrastructure/database"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
)

// env wires the full service stack against a throwaway database file, the
// way the entrypoint does.
type env struct {
	provider    *database.Provider
	schemas     *persistence.SchemaRepository
	records     *persistence.RecordRepository
	identity    *services.IdentityService
	validation  *services.ValidationService
	descriptors *services.DescriptorService
	persist     *services.PersistenceService
	reports     *services.ReportService
	auth        *services.AuthService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	provider := database.NewProvider(filepath.Join(t.TempDir(), "schedule_test.db"))
	require.NoError(t, bootstrap.EnsureSchema(provider))

	cfg := schema.ShiftSchedule()
	schemas := persistence.NewSchemaRepository(provider)
	records := persistence.NewRecordRepository(provider)
	identity := services.NewIdentityService(cfg, schemas, records)
	validation := services.NewValidationService(cfg, schemas)

	return &env{
		provider:    provider,
		schemas:     schemas,
		records:     records,
		identity:    identity,
		validation:  validation,
		descriptors: services.NewDescriptorService(cfg, schemas, records, identity),
		persist:     services.NewPersistenceService(records, identity, validation),
		reports:     services.NewReportService(records),
		auth:        services.NewAuthService(provider),
	}
}

// exec runs raw DDL/DML for test seeding, outside the layer under test.
func (e *env) exec(t *testing.T, sqlText string, args ...any) {
	t.Helper()
	db, err := e.provider.Open()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(sqlText, args...)
	require.NoError(t, err)
}

// count reads the row count of a table.
func (e *env) count(t *testing.T, table string) int64 {
	t.Helper()
	rows, err := e.records.Query(context.Background(),
		fmt.Sprintf("SELECT COUNT(*) AS [N] FROM [%s]", table))
	require.NoError(t, err)
	require.Len(t, rows.Records, 1)

	n, ok := rows.Records[0]["N"].(int64)
	require.True(t, ok, "COUNT(*) should scan as int64, got %T", rows.Records[0]["N"])
	return n
}

// seedLookups fills every lookup table with a small known population.
func (e *env) seedLookups(t *testing.T) {
	t.Helper()
	e.exec(t, "INSERT INTO [Departments] ([DepartmentID], [Department]) VALUES (1, 'Assembly'), (2, 'Packing')")
	e.exec(t, "INSERT INTO [Managers] ([ManagerID], [ManagerName]) VALUES (1, 'Dana')")
	e.exec(t, `INSERT INTO [Shift Durations] ([ShiftDurationID], [ShiftStart], [ShiftEnd], [ShiftHours])
		VALUES (1, '1999-12-30 08:00:00', '1999-12-30 16:00:00', 8)`)
	e.exec(t, "INSERT INTO [Shift Supervisors] ([SupervisorID], [SupervisorName]) VALUES (1, 'Kim'), (2, 'Ana')")
	e.exec(t, "INSERT INTO [Worker Counts] ([WorkerCountID], [WorkerCount]) VALUES (1, 12), (2, 5)")
}
