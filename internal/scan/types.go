package scan

import (
	"time"

	"github.com/tonicformac/deepclean/internal/catalog"
)

// Item is one deletable filesystem entry discovered during a scan.
// Regular files carry their size; a directory item is an empty leaf the
// scanner found nothing under, recorded with size zero so it can still
// be removed.
type Item struct {
	Path  string
	Size  int64
	IsDir bool
}

// AccessError records a path the scanner could not read. It does not
// abort the category; the total simply omits what was unreadable.
type AccessError struct {
	Path   string
	Reason string
}

// Result is one category's snapshot. TotalSize is always the sum of the
// item sizes and ItemCount the length of Items.
type Result struct {
	Category  catalog.ID
	TotalSize int64
	ItemCount int
	Items     []Item
	Skipped   []AccessError
	ScannedAt time.Time
}
