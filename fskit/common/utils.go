package common

import (
	"path/filepath"
	"strings"
)

// PathUtils provides path manipulation utilities used across fskit packages
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// NormalizePath normalizes a file path for cross-platform compatibility
func (pu *PathUtils) NormalizePath(path string) string {
	// Convert to absolute path
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}

// SplitPath splits a path into directory, base name and extension components
func (pu *PathUtils) SplitPath(path string) (dir, name, ext string) {
	dir = filepath.Dir(path)
	name = filepath.Base(path)
	ext = filepath.Ext(name)

	if ext != "" {
		name = strings.TrimSuffix(name, ext)
	}

	return dir, name, ext
}

// ValidatePath validates that a path is safe and accessible
func (pu *PathUtils) ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrPathEmpty
	}

	// Check for invalid characters (basic check)
	if strings.Contains(path, "\x00") {
		return ErrPathInvalid
	}

	// Check path length (reasonable limit)
	if len(path) > 4096 {
		return ErrPathTooLong
	}

	return nil
}

// IsSystemPath checks if a path is a critical system path
func (pu *PathUtils) IsSystemPath(path string) bool {
	systemPaths := []string{
		"/bin", "/sbin", "/usr/bin", "/usr/sbin",
		"/etc", "/boot", "/dev", "/proc", "/sys",
		"C:\\Windows", "C:\\Program Files", "C:\\Program Files (x86)",
	}

	for _, sysPath := range systemPaths {
		if strings.HasPrefix(path, sysPath) {
			return true
		}
	}

	return false
}
