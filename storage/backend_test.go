package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	fs, err := NewFileSystemBackend(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)
	return map[string]Backend{
		"fs":     fs,
		"memory": NewInMemoryBackend(),
	}
}

func TestBackendRoundTrip(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := b.Get("xochi-save")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Set("xochi-save", []byte(`{"lives":3}`)))
			got, ok, err := b.Get("xochi-save")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `{"lives":3}`, string(got))

			require.NoError(t, b.Set("xochi-save", []byte(`{"lives":1}`)))
			got, _, _ = b.Get("xochi-save")
			assert.JSONEq(t, `{"lives":1}`, string(got))

			require.NoError(t, b.Delete("xochi-save"))
			require.NoError(t, b.Delete("xochi-save"))
			_, ok, _ = b.Get("xochi-save")
			assert.False(t, ok)
		})
	}
}

func TestBackendRejectsBadKeys(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "..", "a/b", "../escape", "white space"} {
				assert.ErrorIs(t, b.Set(key, nil), ErrInvalidKey, key)
				_, _, err := b.Get(key)
				assert.ErrorIs(t, err, ErrInvalidKey, key)
			}
		})
	}
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "save.json")
	require.NoError(t, AtomicWriteFile(target, []byte("data"), 0o600))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "save.json", entries[0].Name())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestInMemoryBackendCopiesValues(t *testing.T) {
	b := NewInMemoryBackend()
	v := []byte("abc")
	require.NoError(t, b.Set("k", v))
	v[0] = 'z'
	got, _, _ := b.Get("k")
	assert.Equal(t, "abc", string(got))
}
