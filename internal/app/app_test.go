package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/atomicstack/docnav/internal/prefs"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	store, err := openStore(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, prefs.SetInt(context.Background(), store, prefs.SidebarWidthKey, 33))
	got, ok := prefs.Int(context.Background(), store, prefs.SidebarWidthKey)
	require.True(t, ok)
	require.Equal(t, 33, got)
	require.Equal(t, path, store.Path())
}

func TestOpenStoreInMemory(t *testing.T) {
	store, err := openStore("")
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestRunFailsWithoutSite(t *testing.T) {
	err := Run(Config{SitePath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "load site")
}
