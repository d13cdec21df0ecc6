// Package engine coordinates scan and clean operations over the
// category catalog. An Engine is explicitly constructed and owned by
// its caller; it enforces single-flight discipline, publishes an
// observable status, and holds the latest scan snapshots that clean
// operations are interpreted against.
package engine

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/clean"
	"github.com/tonicformac/deepclean/internal/scan"
)

// ErrBusy rejects a scan or clean requested while another operation is
// in flight. The in-flight operation is unaffected.
var ErrBusy = errors.New("deepclean: an operation is already in progress")

// ErrCancelled marks an operation that was stopped cooperatively. The
// partial results returned next to it reflect the work committed before
// the cancellation was observed.
var ErrCancelled = errors.New("deepclean: operation cancelled")

// Phase is the engine's current lifecycle stage.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScanning
	PhaseCleaning
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScanning:
		return "scanning"
	case PhaseCleaning:
		return "cleaning"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// Status is an observable snapshot of the engine. Scanning identifies
// the category currently being traversed while Phase is PhaseScanning;
// CleanProgress is in [0,1] while Phase is PhaseCleaning.
type Status struct {
	Phase         Phase
	Scanning      catalog.ID
	CleanProgress float64
}

// Observer receives a Status snapshot after each discrete step: a
// category boundary during scanning, an item boundary during cleaning.
// It runs synchronously on the operation's goroutine.
type Observer func(Status)

// Engine is the orchestration facade over Scanner and Executor.
type Engine struct {
	scanner  *scan.Scanner
	executor *clean.Executor
	logger   *log.Logger
	observer Observer

	mu       sync.Mutex
	phase    Phase
	scanning catalog.ID
	progress float64
	results  []scan.Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes operational logging. The default discards.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithObserver registers a status observer.
func WithObserver(observer Observer) Option {
	return func(e *Engine) { e.observer = observer }
}

// New returns an idle engine.
func New(scanner *scan.Scanner, executor *clean.Executor, opts ...Option) *Engine {
	e := &Engine{
		scanner:  scanner,
		executor: executor,
		logger:   log.New(io.Discard, "", 0),
		phase:    PhaseIdle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current status snapshot.
func (e *Engine) State() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.statusLocked()
}

// ScanningCategory reports the category currently being traversed, if a
// scan is in flight.
func (e *Engine) ScanningCategory() (catalog.ID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scanning, e.scanning != ""
}

// Results returns the latest scan snapshots, in catalog order. Nil
// before the first scan completes.
func (e *Engine) Results() []scan.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.results
}

// ScanAll scans every category and replaces the engine's held results
// once the new set is ready. A concurrent scan or clean returns ErrBusy.
// On cancellation the completed categories are returned, and kept, with
// ErrCancelled; a scan cancelled before any category completed produced
// nothing, so the previous phase and any previously held results stand.
func (e *Engine) ScanAll(ctx context.Context) ([]scan.Result, error) {
	prev, err := e.begin(PhaseScanning)
	if err != nil {
		return nil, err
	}
	results, err := e.runScan(ctx)
	if err != nil && len(results) == 0 {
		e.setPhase(prev)
		e.logger.Printf("scan cancelled before any category completed")
		return nil, ErrCancelled
	}
	e.storeResults(results)
	if err != nil {
		e.logger.Printf("scan cancelled after %d categories", len(results))
		return results, ErrCancelled
	}
	e.logger.Printf("scan complete: %d categories, %s total", len(results), totalOf(results))
	return results, nil
}

// Clean deletes the items of the selected categories from the latest
// scan results, then rescans so callers observe updated totals. With no
// prior scan or an empty selection it is "nothing to clean" and returns
// a zero outcome. A concurrent operation returns ErrBusy; cancellation
// returns the outcome committed so far with ErrCancelled, and a refresh
// cut short before completing anything leaves the pre-clean snapshots
// in place.
func (e *Engine) Clean(ctx context.Context, selection map[catalog.ID]bool) (clean.Outcome, error) {
	prev, err := e.begin(PhaseCleaning)
	if err != nil {
		return clean.Outcome{}, err
	}

	e.mu.Lock()
	results := e.results
	e.mu.Unlock()

	if len(results) == 0 || len(selection) == 0 {
		e.setPhase(prev)
		return clean.Outcome{}, nil
	}

	outcome, cleanErr := e.executor.Clean(ctx, results, selection, func(done, total int) {
		e.mu.Lock()
		e.progress = float64(done) / float64(total)
		status := e.statusLocked()
		e.mu.Unlock()
		e.notify(status)
	})
	e.logger.Printf("clean: freed %d bytes, %d deleted, %d failures", outcome.BytesFreed, outcome.Deleted, len(outcome.Failures))

	if cleanErr != nil {
		// Deletions stop where the cancellation was observed; the held
		// results stay as scanned so the caller can inspect them.
		e.setPhase(PhaseResults)
		return outcome, ErrCancelled
	}

	// Rescan inside the same single-flight slot: no request can
	// interleave between the clean and the refresh.
	e.mu.Lock()
	e.phase = PhaseScanning
	e.progress = 0
	status := e.statusLocked()
	e.mu.Unlock()
	e.notify(status)

	rescan, rescanErr := e.runScan(ctx)
	if rescanErr != nil && len(rescan) == 0 {
		// The refresh produced nothing; the pre-clean snapshots stay,
		// and ErrCancelled tells the caller the totals are stale.
		e.setPhase(PhaseResults)
		return outcome, ErrCancelled
	}
	e.storeResults(rescan)
	if rescanErr != nil {
		return outcome, ErrCancelled
	}
	return outcome, nil
}

func (e *Engine) runScan(ctx context.Context) ([]scan.Result, error) {
	return e.scanner.ScanAll(ctx, func(id catalog.ID, done bool) {
		e.mu.Lock()
		if done {
			e.scanning = ""
		} else {
			e.scanning = id
		}
		status := e.statusLocked()
		e.mu.Unlock()
		e.notify(status)
	})
}

// begin claims the single-flight slot, returning the phase it displaced
// so no-op operations can restore it.
func (e *Engine) begin(next Phase) (Phase, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseScanning || e.phase == PhaseCleaning {
		return e.phase, ErrBusy
	}
	prev := e.phase
	e.phase = next
	e.progress = 0
	return prev, nil
}

func (e *Engine) setPhase(p Phase) {
	e.mu.Lock()
	e.phase = p
	e.scanning = ""
	e.progress = 0
	status := e.statusLocked()
	e.mu.Unlock()
	e.notify(status)
}

func (e *Engine) storeResults(results []scan.Result) {
	e.mu.Lock()
	e.results = results
	e.scanning = ""
	e.progress = 0
	e.phase = PhaseResults
	status := e.statusLocked()
	e.mu.Unlock()
	e.notify(status)
}

func (e *Engine) statusLocked() Status {
	return Status{
		Phase:         e.phase,
		Scanning:      e.scanning,
		CleanProgress: e.progress,
	}
}

func (e *Engine) notify(status Status) {
	if e.observer != nil {
		e.observer(status)
	}
}

func totalOf(results []scan.Result) string {
	var total int64
	for _, r := range results {
		total += r.TotalSize
	}
	return humanize.Bytes(uint64(total))
}
