package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, ok, err := db.Get(ctx, SidebarWidthKey)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, SetInt(ctx, db, SidebarWidthKey, 32))
	require.NoError(t, SetInt(ctx, db, SidebarWidthKey, 40))
	v, ok := Int(ctx, db, SidebarWidthKey)
	require.True(t, ok)
	require.Equal(t, 40, v)

	require.NoError(t, db.Set(ctx, "bad", "wide"))
	_, ok = Int(ctx, db, "bad")
	require.False(t, ok)

	_, ok = Int(ctx, nil, SidebarWidthKey)
	require.False(t, ok)
	require.NoError(t, SetInt(ctx, nil, SidebarWidthKey, 1))
}

func TestFileStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "docnav.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, SetInt(ctx, db, SidebarWidthKey, 28))
	require.NoError(t, db.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })
	v, ok := Int(ctx, reopened, SidebarWidthKey)
	require.True(t, ok)
	require.Equal(t, 28, v)
	require.Equal(t, path, reopened.Path())
}
