package fileops

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/fskit/fskit/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFilesAreEqualReflexive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "same content")

	equal, err := FilesAreEqual(context.Background(), path, path, 0)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestFilesAreEqualSymmetric(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "identical bytes")
	b := writeFile(t, dir, "b.txt", "identical bytes")

	ab, err := FilesAreEqual(context.Background(), a, b, 0)
	require.NoError(t, err)
	ba, err := FilesAreEqual(context.Background(), b, a, 0)
	require.NoError(t, err)

	assert.True(t, ab)
	assert.Equal(t, ab, ba)
}

func TestFilesAreEqualSizeShortCircuit(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "short")
	b := writeFile(t, dir, "b.txt", "much longer content")

	equal, err := FilesAreEqual(context.Background(), a, b, 0)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestFilesAreEqualDetectsContentMismatch(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "aaaaaaaaaa")
	b := writeFile(t, dir, "b.txt", "aaaaaaaaab")

	// Small buffer forces multiple chunks
	equal, err := FilesAreEqual(context.Background(), a, b, 3)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestFilesAreEqualEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "")
	b := writeFile(t, dir, "b.txt", "")

	equal, err := FilesAreEqual(context.Background(), a, b, 0)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestFilesAreEqualMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "x")

	_, err := FilesAreEqual(context.Background(), a, filepath.Join(dir, "missing.txt"), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRenameFileBlankArgsNoOp(t *testing.T) {
	assert.NoError(t, RenameFile("", "new"))
	assert.NoError(t, RenameFile("/tmp/whatever.txt", "   "))
}

func TestRenameFilePreservesExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "old.txt", "content")

	require.NoError(t, RenameFile(path, "  renamed  "))

	_, err := os.Stat(filepath.Join(dir, "renamed.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRenameFileTargetExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "old.txt", "original")
	writeFile(t, dir, "taken.txt", "occupied")

	err := RenameFile(path, "taken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrAlreadyExists))

	// Source must be untouched after the failed rename
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "original", string(content))
}

func TestEnsureDirectoryExistsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	require.NoError(t, EnsureDirectoryExists(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirectoryExistsInvalidPath(t *testing.T) {
	err := EnsureDirectoryExists("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrPathEmpty))
}

func TestDeleteFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doomed.txt", "x")

	require.NoError(t, DeleteFile(path))
	require.NoError(t, DeleteFile(path)) // already gone, still no error

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestMoveToTrash(t *testing.T) {
	dir := t.TempDir()
	trash := filepath.Join(dir, "trash")
	path := writeFile(t, dir, "junk.txt", "garbage")

	trashed, err := MoveToTrash(path, trash)
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(trashed), "junk.txt")
	content, err := os.ReadFile(trashed)
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(content))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestMoveToTrashMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := MoveToTrash(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "trash"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
