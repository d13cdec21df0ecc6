package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tonicformac/deepclean/internal/catalog"
	"github.com/tonicformac/deepclean/internal/resolve"
)

const defaultRootWorkers = 4

// Notify is called at category boundaries: once with done=false before
// a category's traversal starts and once with done=true after it
// completes. Calls are synchronous, so implementations must be fast.
type Notify func(id catalog.ID, done bool)

// Scanner walks each category's resolved roots and produces one Result
// per category in catalog order.
type Scanner struct {
	categories []catalog.Category
	resolver   *resolve.Resolver
	workers    int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRootWorkers bounds how many of a category's roots are traversed
// concurrently.
func WithRootWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// New returns a scanner over the given categories. Catalog order is
// preserved: it fixes both scan order and overlap ownership.
func New(categories []catalog.Category, resolver *resolve.Resolver, opts ...Option) *Scanner {
	s := &Scanner{
		categories: categories,
		resolver:   resolver,
		workers:    defaultRootWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScanAll scans every category in catalog order and returns their
// snapshots. Roots are resolved and claimed for all categories up front,
// then categories are traversed one at a time. Cancellation is observed
// between categories and between directories: results for completed
// categories are returned and the in-flight category's partial
// accumulation is discarded, with the context's error alongside.
func (s *Scanner) ScanAll(ctx context.Context, notify Notify) ([]Result, error) {
	claims := resolve.NewClaimIndex()
	rootsByCategory := make([][]string, len(s.categories))
	for i, cat := range s.categories {
		for _, root := range s.resolver.Roots(cat) {
			if claims.Claim(cat.ID, root) {
				rootsByCategory[i] = append(rootsByCategory[i], root)
			}
		}
	}

	results := make([]Result, 0, len(s.categories))
	for i, cat := range s.categories {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if notify != nil {
			notify(cat.ID, false)
		}
		result, err := s.scanCategory(ctx, cat, rootsByCategory[i], claims)
		if notify != nil {
			notify(cat.ID, true)
		}
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

type rootScan struct {
	items   []Item
	skipped []AccessError
}

// scanCategory traverses the category's claimed roots. Distinct roots
// run on a bounded worker pool; results are assembled in root order so
// the output is deterministic for an unchanged filesystem.
func (s *Scanner) scanCategory(ctx context.Context, cat catalog.Category, roots []string, claims *resolve.ClaimIndex) (Result, error) {
	result := Result{
		Category:  cat.ID,
		Items:     []Item{},
		ScannedAt: time.Now(),
	}

	perRoot := make([]rootScan, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			items, skipped, _, err := s.walk(gctx, cat, root, claims)
			if err != nil {
				return err
			}
			perRoot[i] = rootScan{items: items, skipped: skipped}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for _, rs := range perRoot {
		for _, item := range rs.items {
			result.Items = append(result.Items, item)
			result.TotalSize += item.Size
		}
		result.Skipped = append(result.Skipped, rs.skipped...)
	}
	result.ItemCount = len(result.Items)
	return result, nil
}

// walk enumerates dir depth-first in directory-listing order, which
// os.ReadDir keeps sorted by name. Symlinks are never followed, and a
// subdirectory claimed by another category is skipped wholesale. The
// empty return reports whether dir held no entries at all, which is the
// only condition under which a directory may be deleted wholesale:
// a directory whose contents were merely skipped (symlinks, hidden
// entries, another category's claim) still holds them.
func (s *Scanner) walk(ctx context.Context, cat catalog.Category, dir string, claims *resolve.ClaimIndex) (items []Item, skipped []AccessError, empty bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, false, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []AccessError{{Path: dir, Reason: err.Error()}}, false, nil
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)
		if owner, ok := claims.ExactOwner(path); ok && owner != cat.ID {
			continue
		}
		if cat.ExcludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			continue
		}
		if entry.IsDir() {
			sub, subSkipped, subEmpty, err := s.walk(ctx, cat, path, claims)
			if err != nil {
				return nil, nil, false, err
			}
			if subEmpty && cat.ClaimsAll() {
				// Truly empty and the category owns the subtree: the
				// directory itself is the deletable leaf.
				items = append(items, Item{Path: path, IsDir: true})
				continue
			}
			items = append(items, sub...)
			skipped = append(skipped, subSkipped...)
			continue
		}
		if !cat.Matches(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			skipped = append(skipped, AccessError{Path: path, Reason: err.Error()})
			continue
		}
		items = append(items, Item{Path: path, Size: info.Size()})
	}
	return items, skipped, len(entries) == 0, nil
}
