package resolve

import (
	"path/filepath"

	"github.com/tonicformac/deepclean/internal/catalog"
)

// ClaimIndex arbitrates ownership of scan roots that overlap across
// categories, so a concrete file is attributed to exactly one category.
// Claims are registered in catalog order, which makes the first category
// in that order the deterministic winner for any shared path.
type ClaimIndex struct {
	owned map[string]catalog.ID
}

// NewClaimIndex returns an empty index.
func NewClaimIndex() *ClaimIndex {
	return &ClaimIndex{owned: make(map[string]catalog.ID)}
}

// Claim records id as the owner of root. It fails when the root, or any
// of its ancestors, is already owned: an earlier claim on an ancestor
// covers the whole subtree, and a repeated claim on the same path would
// double-count it.
func (ci *ClaimIndex) Claim(id catalog.ID, root string) bool {
	root = filepath.Clean(root)
	if _, ok := ci.Owner(root); ok {
		return false
	}
	ci.owned[root] = id
	return true
}

// Owner walks from path toward the filesystem root and returns the first
// claim found.
func (ci *ClaimIndex) Owner(path string) (catalog.ID, bool) {
	p := filepath.Clean(path)
	for {
		if id, ok := ci.owned[p]; ok {
			return id, true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", false
		}
		p = parent
	}
}

// ExactOwner reports the claim registered for exactly this path, if any.
// Scanners use it while walking a claimed root: a descendant directory
// claimed by another category is someone else's territory and must be
// skipped.
func (ci *ClaimIndex) ExactOwner(path string) (catalog.ID, bool) {
	id, ok := ci.owned[filepath.Clean(path)]
	return id, ok
}
