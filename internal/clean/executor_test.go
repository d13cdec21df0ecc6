package clean

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/scan"
)

type fakeFS struct {
	fail    map[string]error
	removed []string
}

func (f *fakeFS) Remove(path string) error {
	if err, ok := f.fail[path]; ok {
		return err
	}
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeFS) RemoveAll(path string) error {
	return f.Remove(path)
}

func resultWith(id catalog.ID, items ...scan.Item) scan.Result {
	r := scan.Result{Category: id, Items: items}
	for _, item := range items {
		r.TotalSize += item.Size
	}
	r.ItemCount = len(items)
	return r
}

func TestCleanEmptySelection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.bin")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	results := []scan.Result{resultWith("temp", scan.Item{Path: path, Size: 4})}
	outcome, err := NewExecutor().Clean(context.Background(), results, nil, nil)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if outcome.BytesFreed != 0 || outcome.Deleted != 0 || len(outcome.Failures) != 0 {
		t.Fatalf("empty selection must be a no-op: %+v", outcome)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file must be untouched: %v", err)
	}
}

func TestCleanNoResults(t *testing.T) {
	outcome, err := NewExecutor().Clean(context.Background(), nil, map[catalog.ID]bool{"temp": true}, nil)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if outcome.BytesFreed != 0 {
		t.Fatalf("nothing scanned means nothing freed: %+v", outcome)
	}
}

func TestCleanPartialFailureTolerance(t *testing.T) {
	fs := &fakeFS{fail: map[string]error{"/x/blocked.bin": errors.New("permission denied")}}
	results := []scan.Result{resultWith("temp",
		scan.Item{Path: "/x/a.bin", Size: 100},
		scan.Item{Path: "/x/blocked.bin", Size: 200},
		scan.Item{Path: "/x/b.bin", Size: 50},
	)}

	outcome, err := NewExecutor(WithFilesystem(fs)).Clean(context.Background(), results, map[catalog.ID]bool{"temp": true}, nil)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if outcome.BytesFreed != 150 {
		t.Fatalf("only successful deletions count, got %d", outcome.BytesFreed)
	}
	if outcome.Deleted != 2 {
		t.Fatalf("expected 2 deletions, got %d", outcome.Deleted)
	}
	if len(outcome.Failures) != 1 || outcome.Failures[0].Path != "/x/blocked.bin" {
		t.Fatalf("failure list wrong: %+v", outcome.Failures)
	}
	if len(fs.removed) != 2 || fs.removed[0] != "/x/a.bin" || fs.removed[1] != "/x/b.bin" {
		t.Fatalf("deletion order not preserved: %v", fs.removed)
	}
}

func TestCleanSelectionFiltersCategories(t *testing.T) {
	fs := &fakeFS{}
	results := []scan.Result{
		resultWith("temp", scan.Item{Path: "/t/a", Size: 1}),
		resultWith("logs", scan.Item{Path: "/l/b", Size: 2}),
	}

	outcome, err := NewExecutor(WithFilesystem(fs)).Clean(context.Background(), results, map[catalog.ID]bool{"logs": true}, nil)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if outcome.BytesFreed != 2 || len(fs.removed) != 1 || fs.removed[0] != "/l/b" {
		t.Fatalf("only selected categories may be touched: %+v %v", outcome, fs.removed)
	}
}

func TestCleanDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "victim.bin")
	if err := os.WriteFile(path, []byte("1234"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	results := []scan.Result{resultWith("temp", scan.Item{Path: path, Size: 4})}
	outcome, err := NewExecutor(WithDryRun(true)).Clean(context.Background(), results, map[catalog.ID]bool{"temp": true}, nil)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if outcome.BytesFreed != 4 || outcome.Deleted != 1 {
		t.Fatalf("dry run should report what would be freed: %+v", outcome)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("dry run must not delete: %v", err)
	}
}

func TestCleanRemovesRealFilesAndEmptyDirs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.bin")
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(file, []byte("xyz"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(empty, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	results := []scan.Result{resultWith("temp",
		scan.Item{Path: file, Size: 3},
		scan.Item{Path: empty, IsDir: true},
	)}

	outcome, err := NewExecutor().Clean(context.Background(), results, map[catalog.ID]bool{"temp": true}, nil)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if outcome.BytesFreed != 3 || outcome.Deleted != 2 {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Fatalf("file should be gone")
	}
	if _, err := os.Stat(empty); !os.IsNotExist(err) {
		t.Fatalf("empty directory should be gone")
	}
}

func TestCleanCancellationKeepsPartialOutcome(t *testing.T) {
	fs := &fakeFS{}
	results := []scan.Result{resultWith("temp",
		scan.Item{Path: "/t/a", Size: 10},
		scan.Item{Path: "/t/b", Size: 20},
		scan.Item{Path: "/t/c", Size: 30},
	)}

	ctx, cancel := context.WithCancel(context.Background())
	outcome, err := NewExecutor(WithFilesystem(fs)).Clean(ctx, results, map[catalog.ID]bool{"temp": true}, func(done, total int) {
		if done == 1 {
			cancel()
		}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if outcome.BytesFreed != 10 || outcome.Deleted != 1 {
		t.Fatalf("partial outcome must reflect committed deletions: %+v", outcome)
	}
}

func TestCleanProgressReporting(t *testing.T) {
	fs := &fakeFS{}
	results := []scan.Result{resultWith("temp",
		scan.Item{Path: "/t/a", Size: 1},
		scan.Item{Path: "/t/b", Size: 1},
	)}

	var calls [][2]int
	if _, err := NewExecutor(WithFilesystem(fs)).Clean(context.Background(), results, map[catalog.ID]bool{"temp": true}, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}); err != nil {
		t.Fatalf("clean: %v", err)
	}

	if len(calls) != 2 || calls[0] != [2]int{1, 2} || calls[1] != [2]int{2, 2} {
		t.Fatalf("unexpected progress sequence: %v", calls)
	}
}
