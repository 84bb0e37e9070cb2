package fileops

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// BatchOperation describes a single source/target pair in a batch.
type BatchOperation struct {
	SourcePath string
	TargetPath string
}

// BatchResult aggregates the outcome of a batch run.
type BatchResult struct {
	Processed     int
	Failed        int
	ResolvedPaths map[string]string // source -> resolved target (copy batches)
	Errors        []error
	Duration      time.Duration
}

// CopyBatch copies a list of source/target pairs on a bounded worker pool.
// Individual failures are collected rather than aborting the batch. Callers
// are responsible for keeping target paths disjoint; the conflict-resolution
// counter is per-call, not shared across workers.
func CopyBatch(ctx context.Context, operations []BatchOperation, opts CopyOptions, maxWorkers int) (*BatchResult, error) {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	start := time.Now()
	result := &BatchResult{ResolvedPaths: make(map[string]string)}
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxWorkers).WithContext(ctx)
	for _, op := range operations {
		op := op
		p.Go(func(ctx context.Context) error {
			copied, err := CopyFile(ctx, op.SourcePath, op.TargetPath, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, err)
				slog.Error("Batch copy operation failed", "src", op.SourcePath, "dst", op.TargetPath, "error", err)
				return nil
			}
			result.Processed++
			result.ResolvedPaths[op.SourcePath] = copied.ResolvedPath
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return result, err
	}

	result.Duration = time.Since(start)
	slog.Info("Batch copy operations completed",
		"total", len(operations),
		"successful", result.Processed,
		"failed", result.Failed,
		"duration", result.Duration)

	return result, nil
}

// DeleteBatch deletes a list of paths on a bounded worker pool. Missing files
// count as processed, matching DeleteFile's idempotent contract.
func DeleteBatch(ctx context.Context, paths []string, maxWorkers int) (*BatchResult, error) {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	start := time.Now()
	result := &BatchResult{}
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(maxWorkers).WithContext(ctx)
	for _, path := range paths {
		path := path
		p.Go(func(_ context.Context) error {
			err := DeleteFile(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, err)
				slog.Error("Batch delete operation failed", "path", path, "error", err)
				return nil
			}
			result.Processed++
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return result, err
	}

	result.Duration = time.Since(start)
	slog.Info("Batch delete operations completed",
		"total", len(paths),
		"successful", result.Processed,
		"failed", result.Failed,
		"duration", result.Duration)

	return result, nil
}
