package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/shiftdesk/backend/pkg/errors"
)

func TestProviderOpensFreshConnections(t *testing.T) {
	provider := NewProvider(filepath.Join(t.TempDir(), "open_test.db"))

	first, err := provider.Open()
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := provider.Open()
	require.NoError(t, err)
	assert.NoError(t, second.Ping(), "a closed connection must not poison later ones")
	require.NoError(t, second.Close())
}

func TestProviderOpenFailureIsConnectivityError(t *testing.T) {
	provider := NewProvider(filepath.Join(t.TempDir(), "no-such-dir", "x.db"))

	_, err := provider.Open()
	require.Error(t, err)
	assert.True(t, apperrors.IsConnectivity(err))
}

// Bound timestamps must land in a text form the engine's own date
// functions can read back, or date-filtered queries silently drop rows.
func TestProviderStoresEngineReadableTimestamps(t *testing.T) {
	provider := NewProvider(filepath.Join(t.TempDir(), "time_test.db"))

	db, err := provider.Open()
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec("CREATE TABLE [Stamps] ([At] DATETIME NOT NULL)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO [Stamps] ([At]) VALUES (?)",
		time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var day string
	require.NoError(t, db.QueryRow("SELECT date([At]) FROM [Stamps]").Scan(&day))
	assert.Equal(t, "2026-08-10", day)

	var month string
	require.NoError(t, db.QueryRow("SELECT strftime('%m', [At]) FROM [Stamps]").Scan(&month))
	assert.Equal(t, "08", month)
}
