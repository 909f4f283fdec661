package prefs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	assert.Equal(t, 1280.0, p.Float(KeyWindowWidth, 1280))
	assert.True(t, p.Bool(KeyShowGrid, true))
	assert.Equal(t, "", p.String(KeyLastDataDir, ""))

	p.SetFloat(KeyWindowWidth, 1440)
	p.SetBool(KeyShowGrid, false)
	p.SetString(KeyLastDataDir, "/data/materials")
	require.NoError(t, p.Save())

	q := Load()
	assert.Equal(t, 1440.0, q.Float(KeyWindowWidth, 0))
	assert.False(t, q.Bool(KeyShowGrid, true))
	assert.Equal(t, "/data/materials", q.String(KeyLastDataDir, ""))
}

func TestPrefsFlushIfDirty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	require.NoError(t, p.FlushIfDirty())
	_, err := os.Stat(p.path)
	assert.True(t, os.IsNotExist(err), "clean prefs should not touch disk")

	p.SetBool(KeyShowGrid, true)
	require.NoError(t, p.FlushIfDirty())
	assert.FileExists(t, p.path)

	// Saving clears the dirty flag.
	require.NoError(t, os.Remove(p.path))
	require.NoError(t, p.FlushIfDirty())
	_, err = os.Stat(p.path)
	assert.True(t, os.IsNotExist(err))
}

func TestPrefsTypeMismatchFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	p.SetString(KeyWindowWidth, "wide")
	assert.Equal(t, 900.0, p.Float(KeyWindowWidth, 900))
	assert.False(t, p.Bool(KeyWindowWidth, false))
}
