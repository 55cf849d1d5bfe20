package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumiseven/jsonrepair-go/internal/cache"
)

func TestCacheListShowsPutRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	store, err := cache.Open(dbPath)
	require.NoError(t, err)
	_, err = store.Put(context.Background(), "{a:1}")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cache", "--db", dbPath, "list"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "{a:1}")
}

func TestCacheClearEmptiesLog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	store, err := cache.Open(dbPath)
	require.NoError(t, err)
	_, err = store.Put(context.Background(), "{a:1}")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cache", "--db", dbPath, "clear"})
	require.NoError(t, cmd.Execute())

	store, err = cache.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()
	records, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCacheVerifyReportsNoDrift(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	store, err := cache.Open(dbPath)
	require.NoError(t, err)
	_, err = store.Put(context.Background(), "{a:1}")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"cache", "--db", dbPath, "verify"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "no drift")
}
