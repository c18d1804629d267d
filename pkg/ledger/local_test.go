package ledger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dundeezhang/secret-santa/pkg/ledger"
	"github.com/dundeezhang/secret-santa/pkg/santa"
)

func TestNewLocalStore(t *testing.T) {
	t.Parallel()

	t.Run("empty base dir", func(t *testing.T) {
		t.Parallel()

		store, err := ledger.NewLocalStore("")
		assert.ErrorIs(t, err, ledger.ErrInvalidConfig)
		assert.Nil(t, store)
	})

	t.Run("creates base dir", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "results")
		store, err := ledger.NewLocalStore(dir)
		require.NoError(t, err)
		require.NotNil(t, store)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestLocalStore_PutGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := ledger.NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "output.txt", []byte("A: B\n")))
	require.NoError(t, store.Put(ctx, "output.txt", []byte("B: C\n")))

	data, err := store.Get(ctx, "output.txt")
	require.NoError(t, err)
	assert.Equal(t, "B: C\n", string(data))

	onDisk, err := os.ReadFile(filepath.Join(dir, "output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "B: C\n", string(onDisk))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")

	assert.Equal(t, filepath.Join(dir, "output.txt"), store.Location("output.txt"))
}

func TestLocalStore_FilesystemRoot(t *testing.T) {
	t.Parallel()

	root := string(filepath.Separator)
	store, err := ledger.NewLocalStore(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "output.txt"), store.Location("output.txt"))
	assert.Equal(t, filepath.Join(root, "results", "2026.txt"), store.Location("results/2026.txt"))

	_, err = store.Get(context.Background(), "secret-santa-missing-ledger.txt")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestLocalStore_Subdirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := ledger.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "2026/output.txt", []byte("A: B\n")))
	data, err := store.Get(ctx, "2026/output.txt")
	require.NoError(t, err)
	assert.Equal(t, "A: B\n", string(data))
}

func TestLocalStore_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := ledger.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	t.Run("missing object", func(t *testing.T) {
		t.Parallel()

		_, err := store.Get(ctx, "missing.txt")
		assert.ErrorIs(t, err, ledger.ErrNotFound)
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()

		err := store.Put(ctx, "../escape.txt", []byte("x"))
		assert.ErrorIs(t, err, ledger.ErrInvalidPath)

		_, err = store.Get(ctx, "../../etc/passwd")
		assert.ErrorIs(t, err, ledger.ErrInvalidPath)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		err := store.Put(ctx, "", []byte("x"))
		assert.ErrorIs(t, err, ledger.ErrInvalidPath)
	})

	t.Run("base dir itself", func(t *testing.T) {
		t.Parallel()

		_, err := store.Get(ctx, ".")
		assert.ErrorIs(t, err, ledger.ErrInvalidPath)

		_, err = store.Get(ctx, "sub/..")
		assert.ErrorIs(t, err, ledger.ErrInvalidPath)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		err := store.Put(canceled, "output.txt", []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLedger_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := ledger.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	l := ledger.New(store, "")
	pairs := []santa.NamePair{
		{Giver: "Alice", Receiver: "Bob"},
		{Giver: "Bob", Receiver: "Carol"},
		{Giver: "Carol", Receiver: "Alice"},
	}
	require.NoError(t, l.Save(ctx, pairs))

	loaded, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pairs, loaded)
	assert.Equal(t, store.Location(ledger.DefaultKey), l.Location())
}

func TestLedger_LoadMissing(t *testing.T) {
	t.Parallel()

	store, err := ledger.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = ledger.New(store, "results.txt").Load(context.Background())
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}
