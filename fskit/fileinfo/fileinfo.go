package fileinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/fskit/fskit/common"
)

// FileInfo wraps a single file path and exposes its metadata on demand.
// Every accessor re-queries the filesystem at call time; nothing is cached,
// so external modification between calls is reflected (or surfaces as an
// error if the file has been removed).
type FileInfo struct {
	path      string
	pathUtils *common.PathUtils
}

// New creates a FileInfo for an existing regular file.
// Returns a not-found error carrying the path when it does not resolve to a file.
func New(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError(path)
		}
		return nil, common.WrapError(err, "failed to access file %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is not a regular file: %s", path)
	}

	return &FileInfo{
		path:      path,
		pathUtils: common.NewPathUtils(),
	}, nil
}

// Path returns the path the FileInfo was constructed with.
func (fi *FileInfo) Path() string {
	return fi.path
}

// Name returns the base name of the file, including its extension.
func (fi *FileInfo) Name() string {
	return filepath.Base(fi.path)
}

// Extension returns the file extension including the leading dot,
// or an empty string when the file has none.
func (fi *FileInfo) Extension() string {
	return filepath.Ext(fi.path)
}

// NameWithoutExtension returns the base name with the extension stripped.
func (fi *FileInfo) NameWithoutExtension() string {
	name := filepath.Base(fi.path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// FullPath returns the absolute, cleaned path of the file.
func (fi *FileInfo) FullPath() string {
	return fi.pathUtils.NormalizePath(fi.path)
}

// DirectoryName returns the directory containing the file.
func (fi *FileInfo) DirectoryName() string {
	return filepath.Dir(fi.FullPath())
}

// SizeBytes returns the current size of the file in bytes.
func (fi *FileInfo) SizeBytes() (int64, error) {
	info, err := fi.stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// LastModified returns the file's modification time.
func (fi *FileInfo) LastModified() (time.Time, error) {
	info, err := fi.stat()
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Created returns the file's creation (status change) time where the
// platform exposes it, falling back to the modification time otherwise.
func (fi *FileInfo) Created() (time.Time, error) {
	info, err := fi.stat()
	if err != nil {
		return time.Time{}, err
	}
	if t, ok := createdTime(info); ok {
		return t, nil
	}
	return info.ModTime(), nil
}

// LastAccessed returns the file's access time where the platform exposes it,
// falling back to the modification time otherwise.
func (fi *FileInfo) LastAccessed() (time.Time, error) {
	info, err := fi.stat()
	if err != nil {
		return time.Time{}, err
	}
	if t, ok := accessedTime(info); ok {
		return t, nil
	}
	return info.ModTime(), nil
}

// IsHidden reports whether the file is hidden (dot-prefixed base name).
func (fi *FileInfo) IsHidden() bool {
	name := filepath.Base(fi.path)
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// IsReadOnly reports whether the file has no writable permission bits.
func (fi *FileInfo) IsReadOnly() (bool, error) {
	info, err := fi.stat()
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0o222 == 0, nil
}

// IsSystem reports whether the file lives under a critical system path.
func (fi *FileInfo) IsSystem() bool {
	return fi.pathUtils.IsSystemPath(fi.FullPath())
}

// MIMEType returns the MIME type derived from the file extension.
// The lookup is static; file content is never inspected.
func (fi *FileInfo) MIMEType() string {
	return MIMEByExtension(fi.Extension())
}

func (fi *FileInfo) stat() (os.FileInfo, error) {
	info, err := os.Stat(fi.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError(fi.path)
		}
		return nil, common.WrapError(err, "failed to stat file %s", fi.path)
	}
	return info, nil
}
