// Package numfmt converts single floating-point numbers to and from their
// locale-sensitive textual representation.
//
// The package has two halves: the Formatter capability interface, which the
// complex-number codec composes (one instance per component), and Decimal,
// the locale-aware implementation backed by a built-in CLDR-derived
// separator table keyed by BCP 47 tags.
package numfmt

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Position is a mutable parse cursor within an input string.
//
// Index is the byte offset where the next match attempt starts; a
// successful parse advances it past the consumed text. ErrorIndex is -1
// until a mismatch is recorded, after which it holds the byte offset where
// matching stopped.
type Position struct {
	Index      int
	ErrorIndex int
}

// NewPosition returns a cursor starting at the given byte offset.
func NewPosition(index int) *Position {
	return &Position{Index: index, ErrorIndex: -1}
}

// Formatter converts a single float64 to and from text.
//
// Parse attempts a match at pos.Index. On success it advances pos.Index
// past the consumed text and returns the value. On mismatch it returns
// ok=false, leaves pos.Index unchanged, and records the offset where
// matching stopped in pos.ErrorIndex.
//
// Implementations must be side-effect-free per call; that is a documented
// precondition for sharing a codec between goroutines, not something this
// package enforces.
type Formatter interface {
	Format(f float64) string
	Parse(s string, pos *Position) (f float64, ok bool)
}

// DefaultTag resolves the process-wide locale from the environment:
// LC_ALL, then LC_NUMERIC, then LANG, with POSIX codeset and modifier
// suffixes stripped ("fr_FR.UTF-8" reads as fr-FR). Unset or unparseable
// values (including "C" and "POSIX") fall back to English.
//
// The read happens at call time; construct formatters once and reuse them
// rather than re-reading the environment per operation.
func DefaultTag() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.English
}
