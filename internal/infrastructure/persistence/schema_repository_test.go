package persistence_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftdesk/backend/internal/bootstrap"
	"github.com/shiftdesk/backend/internal/infrastructure/database"
	"github.com/shiftdesk/backend/internal/infrastructure/persistence"
	apperrors "github.com/shiftdesk/backend/pkg/errors"
	"github.com/shiftdesk/backend/pkg/fieldtypes"
)

func newTestProvider(t *testing.T) *database.Provider {
	t.Helper()
	provider := database.NewProvider(filepath.Join(t.TempDir(), "schedule_test.db"))
	require.NoError(t, bootstrap.EnsureSchema(provider))
	return provider
}

func TestSchemaRepositoryGetColumns(t *testing.T) {
	repo := persistence.NewSchemaRepository(newTestProvider(t))

	columns, err := repo.GetColumns(context.Background(), "Shift Durations")
	require.NoError(t, err)
	require.Len(t, columns, 4)

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	assert.Equal(t, []string{"ShiftDurationID", "ShiftStart", "ShiftEnd", "ShiftHours"}, names)

	assert.Equal(t, fieldtypes.StorageInteger, columns[0].StorageType)
	assert.Equal(t, fieldtypes.SemanticInteger, columns[0].Semantic)
	assert.True(t, columns[0].Required)

	assert.Equal(t, fieldtypes.StorageDate, columns[1].StorageType)
	assert.Equal(t, fieldtypes.SemanticTimestamp, columns[1].Semantic)
	assert.True(t, columns[1].Required)
}

func TestSchemaRepositoryGetColumnsUnknownTable(t *testing.T) {
	repo := persistence.NewSchemaRepository(newTestProvider(t))

	_, err := repo.GetColumns(context.Background(), "Nonexistent")
	require.Error(t, err)
	assert.True(t, apperrors.IsSchema(err))
}

func TestSchemaRepositoryListTables(t *testing.T) {
	repo := persistence.NewSchemaRepository(newTestProvider(t))

	tables, err := repo.ListTables(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"Departments",
		"Managers",
		"Shift Durations",
		"Shift Supervisors",
		"Shifts",
		"Users",
		"Worker Counts",
	}, tables)
	for _, name := range tables {
		assert.NotContains(t, name, "sqlite_")
	}
}

func TestSchemaRepositoryGetVisibleTablesHidesCredentials(t *testing.T) {
	repo := persistence.NewSchemaRepository(newTestProvider(t))

	visible, err := repo.GetVisibleTables(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, visible, "Users")
	assert.Contains(t, visible, "Shifts")
	assert.Contains(t, visible, "Shift Durations")
	assert.Len(t, visible, 6)
}
