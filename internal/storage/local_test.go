package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"greenroots_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)
	return st, dir
}

func TestLocalStorage_SaveAndExists(t *testing.T) {
	st, dir := newLocal(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "photo.png", strings.NewReader("content")))

	exists, err := st.Exists(ctx, "photo.png")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	exists, err = st.Exists(ctx, "missing.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_SaveFlattensNames(t *testing.T) {
	st, dir := newLocal(t)

	require.NoError(t, st.Save(context.Background(), "../escape.png", strings.NewReader("x")))

	_, err := os.Stat(filepath.Join(dir, "escape.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoError(t *testing.T) {
	st, _ := newLocal(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "gone.png", strings.NewReader("x")))
	require.NoError(t, st.Delete(ctx, "gone.png"))
	assert.NoError(t, st.Delete(ctx, "gone.png"))
}

func TestLocalStorage_PublicURL(t *testing.T) {
	st, _ := newLocal(t)

	assert.Equal(t, "/uploads/pic.png", st.PublicURL("pic.png"))
}
