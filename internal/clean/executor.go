package clean

import (
	"context"
	"os"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/scan"
)

// Filesystem is the deletion surface the executor mutates. Production
// code uses the real OS; tests substitute an implementation that fails
// on demand.
type Filesystem interface {
	Remove(path string) error
	RemoveAll(path string) error
}

type osFilesystem struct{}

func (osFilesystem) Remove(path string) error    { return os.Remove(path) }
func (osFilesystem) RemoveAll(path string) error { return os.RemoveAll(path) }

// Failure records one item that could not be deleted and why. It never
// aborts the rest of the batch.
type Failure struct {
	Path   string
	Reason string
}

// Outcome aggregates a clean operation. BytesFreed counts pre-deletion
// recorded sizes of items confirmed deleted, so it never exceeds the
// selected categories' scanned totals.
type Outcome struct {
	BytesFreed int64
	Deleted    int
	Failures   []Failure
}

// Progress is called after every deletion attempt with the number of
// items processed so far and the total selected.
type Progress func(done, total int)

// Executor deletes scanned items for selected categories.
type Executor struct {
	fs     Filesystem
	dryRun bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithFilesystem substitutes the deletion surface.
func WithFilesystem(fs Filesystem) Option {
	return func(e *Executor) { e.fs = fs }
}

// WithDryRun reports what would be freed without touching the
// filesystem.
func WithDryRun(dryRun bool) Option {
	return func(e *Executor) { e.dryRun = dryRun }
}

// NewExecutor returns an executor deleting through the real filesystem
// unless configured otherwise.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{fs: osFilesystem{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Clean deletes every item of results that belongs to a selected
// category, in result order. A failed deletion is recorded and the
// batch continues. Cancellation is observed between items; the partial
// outcome reflects deletions committed before it, returned with the
// context's error alongside. An empty selection, or results with no
// selected items, is "nothing to clean": a zero outcome with no
// filesystem mutation.
func (e *Executor) Clean(ctx context.Context, results []scan.Result, selection map[catalog.ID]bool, onProgress Progress) (Outcome, error) {
	var outcome Outcome

	total := 0
	for _, result := range results {
		if selection[result.Category] {
			total += len(result.Items)
		}
	}
	if total == 0 {
		return outcome, nil
	}

	done := 0
	for _, result := range results {
		if !selection[result.Category] {
			continue
		}
		for _, item := range result.Items {
			if err := ctx.Err(); err != nil {
				return outcome, err
			}
			if err := e.remove(item); err != nil {
				outcome.Failures = append(outcome.Failures, Failure{Path: item.Path, Reason: err.Error()})
			} else {
				outcome.BytesFreed += item.Size
				outcome.Deleted++
			}
			done++
			if onProgress != nil {
				onProgress(done, total)
			}
		}
	}
	return outcome, nil
}

func (e *Executor) remove(item scan.Item) error {
	if e.dryRun {
		return nil
	}
	if item.IsDir {
		return e.fs.RemoveAll(item.Path)
	}
	return e.fs.Remove(item.Path)
}
