package fileops

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/fskit/fskit/common"
)

// DefaultBufferSize is the chunk size used for streamed comparison and copy
// when the caller does not supply one.
const DefaultBufferSize = 4096

var pathUtils = common.NewPathUtils()

// FilesAreEqual compares two files byte-for-byte using fixed-size chunks.
// Sizes are compared first so differing files return false without reading
// content. Each call opens its own read handles, so concurrent calls on
// disjoint file pairs are safe. bufferSize values <= 0 fall back to
// DefaultBufferSize.
func FilesAreEqual(ctx context.Context, pathA, pathB string, bufferSize int) (bool, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	infoA, err := os.Stat(pathA)
	if err != nil {
		if os.IsNotExist(err) {
			return false, common.NotFoundError(pathA)
		}
		return false, common.WrapError(err, "failed to access file %s", pathA)
	}
	infoB, err := os.Stat(pathB)
	if err != nil {
		if os.IsNotExist(err) {
			return false, common.NotFoundError(pathB)
		}
		return false, common.WrapError(err, "failed to access file %s", pathB)
	}

	// Cheap short-circuit before any content is read
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fileA, err := os.Open(pathA)
	if err != nil {
		return false, common.WrapError(err, "failed to open file %s", pathA)
	}
	defer fileA.Close()

	fileB, err := os.Open(pathB)
	if err != nil {
		return false, common.WrapError(err, "failed to open file %s", pathB)
	}
	defer fileB.Close()

	bufA := make([]byte, bufferSize)
	bufB := make([]byte, bufferSize)

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		nA, errA := io.ReadFull(fileA, bufA)
		nB, errB := io.ReadFull(fileB, bufB)

		if nA != nB || !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}

		endA := errA == io.EOF || errA == io.ErrUnexpectedEOF
		endB := errB == io.EOF || errB == io.ErrUnexpectedEOF
		if endA && endB {
			return true, nil
		}
		if errA != nil && !endA {
			return false, common.WrapError(errA, "failed to read file %s", pathA)
		}
		if errB != nil && !endB {
			return false, common.WrapError(errB, "failed to read file %s", pathB)
		}
		if endA != endB {
			return false, nil
		}
	}
}

// RenameFile renames a file in place, preserving its original extension.
// Blank arguments make the call a no-op. The rename is non-destructive:
// an existing file at the target name fails with an already-exists error.
func RenameFile(filePath, newName string) error {
	if strings.TrimSpace(filePath) == "" || strings.TrimSpace(newName) == "" {
		return nil
	}

	dir, _, ext := pathUtils.SplitPath(filePath)
	newPath := filepath.Join(dir, strings.TrimSpace(newName)+ext)

	if _, err := os.Stat(newPath); err == nil {
		return common.AlreadyExistsError(newPath)
	}

	if err := os.Rename(filePath, newPath); err != nil {
		return common.WrapError(err, "failed to rename %s to %s", filePath, newPath)
	}

	slog.Debug("File renamed", "from", filePath, "to", newPath)
	return nil
}

// EnsureDirectoryExists creates the directory and any missing parents.
// Idempotent: an already-present directory is a no-op.
func EnsureDirectoryExists(path string) error {
	if err := pathUtils.ValidatePath(path); err != nil {
		return common.WrapError(err, "invalid directory path %s", path)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return common.WrapError(err, "failed to create directory %s", path)
	}

	return nil
}

// DeleteFile deletes the file if present. Idempotent: a missing file is a
// no-op.
func DeleteFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return common.WrapError(err, "failed to access file %s", path)
	}

	if err := os.Remove(path); err != nil {
		return common.WrapError(err, "failed to delete file %s", path)
	}

	slog.Debug("File deleted", "path", path)
	return nil
}

// MoveToTrash moves a file into trashDir under a timestamped name instead of
// deleting it permanently.
func MoveToTrash(path, trashDir string) (string, error) {
	if strings.TrimSpace(trashDir) == "" {
		return "", fmt.Errorf("trash directory not configured")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", common.NotFoundError(path)
		}
		return "", common.WrapError(err, "failed to access file %s", path)
	}

	if err := os.MkdirAll(trashDir, 0o755); err != nil {
		return "", common.WrapError(err, "failed to create trash directory %s", trashDir)
	}

	baseName := filepath.Base(path)
	timestamp := time.Now().Format("20060102_150405")
	trashFile := filepath.Join(trashDir, fmt.Sprintf("%s_%s", timestamp, baseName))

	if err := os.Rename(path, trashFile); err != nil {
		return "", common.WrapError(err, "failed to move %s to trash", path)
	}

	return trashFile, nil
}
