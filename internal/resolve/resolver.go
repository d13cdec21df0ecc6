package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tonicformac/deepclean/internal/catalog"
)

// Resolver expands category root patterns into concrete, existing
// directories.
type Resolver struct {
	home string
}

// New returns a resolver anchored at the current user's home directory.
func New() *Resolver {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Resolver{home: home}
}

// NewWithHome anchors "~" expansion at an explicit directory. Tests use
// this to point categories at fixture trees.
func NewWithHome(home string) *Resolver {
	return &Resolver{home: home}
}

// Roots expands a category's patterns into existing directory paths,
// preserving pattern order. Patterns that resolve to nothing, or to
// something other than a directory, are dropped without error. A path
// produced by more than one pattern appears once.
func (r *Resolver) Roots(c catalog.Category) []string {
	var roots []string
	seen := make(map[string]bool)
	for _, pattern := range c.Patterns {
		expanded := r.expand(pattern)
		if expanded == "" {
			continue
		}
		// Glob handles both literal paths and metacharacter patterns;
		// a literal path that does not exist simply yields no matches.
		matches, err := filepath.Glob(expanded)
		if err != nil {
			continue
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}
			cleaned := filepath.Clean(match)
			if seen[cleaned] {
				continue
			}
			seen[cleaned] = true
			roots = append(roots, cleaned)
		}
	}
	return roots
}

// expand substitutes a leading "~" with the home directory and resolves
// environment variables.
func (r *Resolver) expand(pattern string) string {
	if pattern == "~" {
		return r.home
	}
	if strings.HasPrefix(pattern, "~/") {
		if r.home == "" {
			return ""
		}
		pattern = filepath.Join(r.home, pattern[2:])
	}
	return os.ExpandEnv(pattern)
}
