package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	exists, err := e.auth.UserExists(ctx, "ops")
	require.NoError(t, err)
	assert.False(t, exists)

	registered, err := e.auth.Register(ctx, "ops", "hunter42")
	require.NoError(t, err)
	assert.True(t, registered)

	exists, err = e.auth.UserExists(ctx, "ops")
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err := e.auth.Authenticate(ctx, "ops", "hunter42")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.auth.Authenticate(ctx, "ops", "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	registered, err := e.auth.Register(ctx, "ops", "hunter42")
	require.NoError(t, err)
	require.True(t, registered)

	registered, err = e.auth.Register(ctx, "ops", "other-secret")
	require.NoError(t, err, "a taken username is a plain false, not an error")
	assert.False(t, registered)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	e := newEnv(t)

	ok, err := e.auth.Authenticate(context.Background(), "nobody", "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoredCredentialIsADigest(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Register(ctx, "ops", "hunter42")
	require.NoError(t, err)

	rows, err := e.records.Query(ctx, "SELECT [PasswordHash] FROM [Users] WHERE [Username] = ?", "ops")
	require.NoError(t, err)
	require.Len(t, rows.Records, 1)
	assert.NotEqual(t, "hunter42", rows.Records[0]["PasswordHash"])
}
