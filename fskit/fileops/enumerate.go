package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/fskit/fskit/common"

	ignore "github.com/sabhiram/go-gitignore"
)

// EnumerateOptions configures directory enumeration.
type EnumerateOptions struct {
	Recursive      bool     // Descend into subdirectories
	Filter         []string // Extension filter; a blank entry matches everything
	IgnorePatterns []string // Gitignore-style patterns applied to relative paths
}

// AllFileExtensions returns the set of distinct extensions of the files under
// folder (recursively if requested). Extensions include the leading dot;
// files without one contribute the empty string. Order is unspecified.
func AllFileExtensions(folder string, recursive bool) ([]string, error) {
	paths, err := EnumerateFiles(folder, EnumerateOptions{Recursive: recursive})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	extensions := make([]string, 0)
	for _, path := range paths {
		ext := filepath.Ext(path)
		if _, ok := seen[ext]; !ok {
			seen[ext] = struct{}{}
			extensions = append(extensions, ext)
		}
	}

	return extensions, nil
}

// AllFilePaths returns the full paths of the files under folder that pass the
// extension filter. A nil or empty filter includes every file; a blank filter
// entry acts as a wildcard and matches everything.
func AllFilePaths(folder string, recursive bool, filter []string) ([]string, error) {
	return EnumerateFiles(folder, EnumerateOptions{Recursive: recursive, Filter: filter})
}

// AllFileNames returns the base names of the files under folder that pass the
// extension filter, with the same filter semantics as AllFilePaths.
func AllFileNames(folder string, recursive bool, filter []string) ([]string, error) {
	paths, err := EnumerateFiles(folder, EnumerateOptions{Recursive: recursive, Filter: filter})
	if err != nil {
		return nil, err
	}

	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = filepath.Base(path)
	}

	return names, nil
}

// EnumerateFiles lists files under folder according to opts. Return order
// follows the underlying directory enumeration and is not guaranteed sorted.
func EnumerateFiles(folder string, opts EnumerateOptions) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError(folder)
		}
		return nil, common.WrapError(err, "failed to access directory %s", folder)
	}
	if !info.IsDir() {
		return nil, common.WrapError(common.ErrPathInvalid, "path is not a directory: %s", folder)
	}

	var ignorer *ignore.GitIgnore
	if len(opts.IgnorePatterns) > 0 {
		ignorer = ignore.CompileIgnoreLines(opts.IgnorePatterns...)
	}

	var paths []string

	include := func(path string) {
		if !matchesFilter(filepath.Ext(path), opts.Filter) {
			return
		}
		if ignorer != nil {
			rel, relErr := filepath.Rel(folder, path)
			if relErr == nil && ignorer.MatchesPath(rel) {
				return
			}
		}
		paths = append(paths, path)
	}

	if opts.Recursive {
		err = filepath.WalkDir(folder, func(path string, d os.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() {
				include(path)
			}
			return nil
		})
		if err != nil {
			return nil, common.WrapError(err, "failed to walk directory %s", folder)
		}
		return paths, nil
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, common.WrapError(err, "failed to read directory %s", folder)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			include(filepath.Join(folder, entry.Name()))
		}
	}

	return paths, nil
}

// matchesFilter reports whether a file extension passes the filter list.
// A blank entry matches everything, including files the other entries would
// exclude.
func matchesFilter(ext string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}

	for _, entry := range filter {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			return true
		}
		if strings.EqualFold(trimmed, ext) {
			return true
		}
	}

	return false
}
