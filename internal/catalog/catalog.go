package catalog

import (
	"strings"

	"github.com/IGLOU-EU/go-wildcard"
)

// ID identifies a cleanup category.
type ID string

const (
	UserCache    ID = "userCache"
	SystemCache  ID = "systemCache"
	LogFiles     ID = "logFiles"
	TempFiles    ID = "tempFiles"
	DevArtifacts ID = "devArtifacts"
)

// Category is the engine-facing description of a cleanup category: the
// root patterns to resolve and the policy for which items under those
// roots belong to it. Display metadata lives separately in Info.
type Category struct {
	ID ID

	// Patterns are root path patterns. A leading "~" and environment
	// variables are expanded, glob metacharacters are supported.
	// Patterns that resolve to nothing are silently dropped.
	Patterns []string

	// Match restricts the category to files whose base name matches at
	// least one pattern. Empty means the category claims every file
	// under its roots.
	Match []string

	// ExcludeHidden skips dot-prefixed entries during traversal.
	ExcludeHidden bool
}

// ClaimsAll reports whether the category owns entire subtrees rather
// than a filtered subset of files.
func (c Category) ClaimsAll() bool {
	return len(c.Match) == 0
}

// Matches reports whether a file with the given base name belongs to
// the category.
func (c Category) Matches(name string) bool {
	if len(c.Match) == 0 {
		return true
	}
	for _, pattern := range c.Match {
		if wildcard.Match(pattern, name) {
			return true
		}
	}
	return false
}

// Info carries presentation metadata for a category. The scan and clean
// paths never read it.
type Info struct {
	Name        string
	Icon        string
	Description string
}

// Default returns the built-in categories in catalog order. The order
// is part of the contract: it decides which category claims a path that
// appears under more than one category, and scans always run in it.
func Default() []Category {
	return []Category{
		{
			ID: UserCache,
			Patterns: []string{
				"~/Library/Caches",
				"~/.cache",
			},
		},
		{
			ID: SystemCache,
			Patterns: []string{
				"/Library/Caches",
			},
		},
		{
			ID: LogFiles,
			Patterns: []string{
				"~/Library/Logs",
				"/Library/Logs",
				"/var/log",
			},
			Match: []string{"*.log", "*.log.*"},
		},
		{
			ID: TempFiles,
			Patterns: []string{
				"$TMPDIR",
				"/private/tmp",
			},
		},
		{
			ID: DevArtifacts,
			Patterns: []string{
				"~/Library/Developer/Xcode/DerivedData",
				"~/Library/Caches/Homebrew",
				"~/.npm/_cacache",
				"~/.gradle/caches",
			},
		},
	}
}

var infos = map[ID]Info{
	UserCache:    {Name: "User Caches", Icon: "folder.badge.gearshape", Description: "Application caches in your home folder"},
	SystemCache:  {Name: "System Caches", Icon: "internaldrive", Description: "Shared caches under /Library/Caches"},
	LogFiles:     {Name: "Log Files", Icon: "doc.text", Description: "Application and system log files"},
	TempFiles:    {Name: "Temporary Files", Icon: "clock.arrow.circlepath", Description: "Temporary files left behind by apps"},
	DevArtifacts: {Name: "Developer Junk", Icon: "hammer", Description: "Xcode derived data and package manager caches"},
}

// InfoFor returns display metadata for a category. Unknown IDs get a
// fallback derived from the ID so callers can always render something.
func InfoFor(id ID) Info {
	if info, ok := infos[id]; ok {
		return info
	}
	return Info{Name: titleCase(string(id)), Icon: "questionmark.folder", Description: ""}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
