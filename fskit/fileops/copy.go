package fileops

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/fskit/fskit/common"
	"github.com/ZanzyTHEbar/fskit/fskit/config"
)

// MaxSuffixAttempts caps the conflict-resolution suffix search. The search
// aborts with an exhaustion error once this many increments have been tried.
const MaxSuffixAttempts = 1000

// EqualMarker is inserted into generated candidate names when the source
// compared byte-identical to a colliding file.
const EqualMarker = "_equal"

// CopyOptions configures a single file copy.
type CopyOptions struct {
	Overwrite   bool // Replace an existing file at the target path
	StartSuffix int  // Initial value of the conflict-resolution counter
	BufferSize  int  // Chunk size for comparison and copy (0 = DefaultBufferSize)
	MaxAttempts int  // Suffix search cap (0 = MaxSuffixAttempts)
}

// CopyResult reports the outcome of a copy. ResolvedPath is the path the
// content actually landed at, which differs from the requested target when
// conflict suffixing applied.
type CopyResult struct {
	ResolvedPath string
	Suffix       int  // Final value of the conflict-resolution counter
	MatchedEqual bool // A colliding file compared byte-identical to the source
	BytesCopied  int64
}

// OptionsFromConfig builds CopyOptions from a loaded configuration,
// leaving the per-call fields (Overwrite, StartSuffix) at their zero values.
func OptionsFromConfig(cfg *config.Config) CopyOptions {
	return CopyOptions{
		BufferSize:  cfg.Fskit.CopyBufferSize,
		MaxAttempts: cfg.Fskit.MaxSuffixAttempts,
	}
}

// CopyFile copies srcPath to targetPath.
//
// With Overwrite set, any existing file at targetPath is replaced. Without
// it, colliding targets are resolved by appending a numeric suffix to the
// name: each collision is compared against the source, the counter is
// incremented, and the candidate becomes
// <name>[_equal]_<suffix><ext>, where the _equal marker is appended exactly
// once as soon as some collider compared byte-identical. The counter is
// shared between equal and non-equal collisions, so the two kinds are not
// numbered independently. The search aborts with an exhaustion error after
// MaxAttempts increments.
func CopyFile(ctx context.Context, srcPath, targetPath string, opts CopyOptions) (*CopyResult, error) {
	if _, err := os.Stat(srcPath); err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError(srcPath)
		}
		return nil, common.WrapError(err, "failed to access source %s", srcPath)
	}

	if strings.TrimSpace(targetPath) == "" {
		return nil, common.WrapError(common.ErrPathEmpty, "invalid target path %q", targetPath)
	}

	targetDir := filepath.Dir(targetPath)
	if err := pathUtils.ValidatePath(targetDir); err != nil {
		return nil, common.WrapError(err, "invalid target directory %q", targetDir)
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, common.WrapError(err, "failed to create target directory %s", targetDir)
	}

	result := &CopyResult{
		ResolvedPath: targetPath,
		Suffix:       opts.StartSuffix,
	}

	if !opts.Overwrite {
		if err := resolveConflicts(ctx, srcPath, opts, result); err != nil {
			return nil, err
		}
	}

	bytesCopied, err := performCopy(ctx, srcPath, result.ResolvedPath, opts.BufferSize)
	if err != nil {
		return nil, common.WrapError(err, "failed to copy %s to %s", srcPath, result.ResolvedPath)
	}
	result.BytesCopied = bytesCopied

	slog.Debug("File copied", "src", srcPath, "dst", result.ResolvedPath, "bytes", bytesCopied)
	return result, nil
}

// resolveConflicts walks candidate names until a free one is found, updating
// result in place.
func resolveConflicts(ctx context.Context, srcPath string, opts CopyOptions, result *CopyResult) error {
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = MaxSuffixAttempts
	}

	dir, baseName, ext := pathUtils.SplitPath(result.ResolvedPath)
	marker := ""
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := os.Stat(result.ResolvedPath); err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return common.WrapError(err, "failed to check target %s", result.ResolvedPath)
		}

		equal, err := FilesAreEqual(ctx, srcPath, result.ResolvedPath, opts.BufferSize)
		if err != nil {
			return common.WrapError(err, "failed to compare %s with %s", srcPath, result.ResolvedPath)
		}

		result.Suffix++
		if equal {
			result.MatchedEqual = true
			if marker == "" && !strings.HasSuffix(baseName, EqualMarker) {
				marker = EqualMarker
			}
		}

		result.ResolvedPath = filepath.Join(dir, fmt.Sprintf("%s%s_%d%s", baseName, marker, result.Suffix, ext))

		attempts++
		if attempts > maxAttempts {
			return common.WrapError(common.ErrExhausted,
				"no free candidate name for %s after %d attempts", srcPath, maxAttempts)
		}
	}
}

// performCopy streams the source into the destination in fixed-size chunks,
// truncating any existing destination file.
func performCopy(ctx context.Context, srcPath, dstPath string, bufferSize int) (int64, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	srcFile, err := os.Open(srcPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dstPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dstFile.Close()

	buffer := make([]byte, bufferSize)
	var totalBytes int64

	for {
		select {
		case <-ctx.Done():
			return totalBytes, ctx.Err()
		default:
		}

		n, readErr := srcFile.Read(buffer)
		if n > 0 {
			if _, writeErr := dstFile.Write(buffer[:n]); writeErr != nil {
				return totalBytes, writeErr
			}
			totalBytes += int64(n)
		}

		if readErr != nil {
			if readErr == io.EOF {
				return totalBytes, nil
			}
			return totalBytes, readErr
		}
	}
}
