package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesDatabase(t *testing.T) {
	s := openTestStore(t)
	var name string
	require.NoError(t, s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='repairs'").Scan(&name))
	assert.Equal(t, "repairs", name)
}

func TestPutLogsSuccessfulRepair(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.Put(ctx, `{name: 'John'}`)
	require.NoError(t, err)
	assert.True(t, rec.Ok)
	assert.Equal(t, `{"name": "John"}`, rec.Output)
	assert.NotEmpty(t, rec.InputHash)
	assert.NotEmpty(t, rec.ID)

	got, found, err := s.Get(ctx, rec.InputHash)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec.Output, got.Output)
}

func TestPutLogsFailedRepair(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.Put(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, rec.Ok)
	assert.Equal(t, "UNEXPECTED_END", rec.ErrorCode)
	assert.Equal(t, 3, rec.ErrorPosition)
}

func TestPutIsIdempotentPerInput(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Put(ctx, `{"a":1}`)
	require.NoError(t, err)
	_, err = s.Put(ctx, `{"a":1}`)
	require.NoError(t, err)

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1, "repeated input should overwrite, not duplicate")
}

func TestListOrdersBySequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inputs := []string{`{"a":1}`, `{"b":2}`, `{"c":3}`}
	for _, in := range inputs {
		_, err := s.Put(ctx, in)
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.Less(t, records[i-1].Seq, records[i].Seq)
	}
}

func TestClearResetsLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Put(ctx, `{"a":1}`)
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestVerifyFindsNoMismatchesForStableInputs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Put(ctx, `{name: 'John', age: 30}`)
	require.NoError(t, err)
	_, err = s.Put(ctx, "not repairable at all \x01")
	require.NoError(t, err)

	mismatches, err := Verify(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, mismatches, "Repair is deterministic, so a fresh run must match the logged outcome")
}
