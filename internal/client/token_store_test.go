package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got, "missing file means no token")

	require.NoError(t, s.Save("tok-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "clearing twice is fine")

	got, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileTokenStore_LoadDirectory(t *testing.T) {
	s := NewFileTokenStore(t.TempDir())

	_, err := s.Load()

	assert.Error(t, err)
}
