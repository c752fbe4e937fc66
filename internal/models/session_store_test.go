package models_test

import (
	"os"
	"testing"

	"flexzone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_EmptyDirectory(t *testing.T) {
	store := models.NewSessionStore(t.TempDir())

	assert.Equal(t, "", store.GetToken())
	assert.Equal(t, "", store.GetMemberID())
	assert.False(t, store.Session().LoggedIn())

	profile, err := store.LoadProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)

	assert.NoError(t, store.ClearSession(), "clearing an empty store is not an error")
}

func TestSessionStore_SetSessionSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, models.NewSessionStore(dir).SetSession("tok-123", "GYM-42"))

	reloaded := models.NewSessionStore(dir)
	assert.Equal(t, models.Session{Token: "tok-123", MemberID: "GYM-42"}, reloaded.Session())
	assert.True(t, reloaded.Session().LoggedIn())

	info, err := os.Stat(reloaded.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSessionStore_SetSessionWithoutMemberDropsStaleID(t *testing.T) {
	store := models.NewSessionStore(t.TempDir())
	require.NoError(t, store.SetSession("old", "GYM-1"))
	require.NoError(t, store.SetSession("new", ""))

	assert.Equal(t, "new", store.GetToken())
	assert.Equal(t, "", store.GetMemberID())
}

func TestSessionStore_ClearSession(t *testing.T) {
	store := models.NewSessionStore(t.TempDir())
	require.NoError(t, store.SetSession("tok", "GYM-7"))
	require.NoError(t, store.SaveProfile(&models.MemberProfile{MembershipID: "GYM-7", FullName: "Ravi"}))

	profile, err := store.LoadProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Ravi", profile.FullName)

	require.NoError(t, store.ClearSession())

	assert.Equal(t, models.Session{}, store.Session())
	profile, err = store.LoadProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)
}
