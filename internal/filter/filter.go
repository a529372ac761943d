package filter

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/atikulmunna/loglens/internal/model"
)

// ErrBadPattern is returned for a glob that doublestar cannot parse.
var ErrBadPattern = errors.New("invalid path pattern")

// PathFilter keeps records whose request path matches at least one glob.
// Patterns use doublestar syntax, so /api/** matches every path under /api.
type PathFilter struct {
	patterns []string
}

// NewPathFilter validates the patterns. With no patterns every record passes.
func NewPathFilter(patterns []string) (*PathFilter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w %q", ErrBadPattern, p)
		}
	}
	return &PathFilter{patterns: patterns}, nil
}

// Match reports whether path passes the filter.
func (f *PathFilter) Match(path string) bool {
	if len(f.patterns) == 0 {
		return true
	}
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}

// Apply returns the records that pass the filter, preserving order.
func (f *PathFilter) Apply(records []model.Record) []model.Record {
	if len(f.patterns) == 0 {
		return records
	}

	var kept []model.Record
	for _, r := range records {
		if f.Match(r.Path) {
			kept = append(kept, r)
		}
	}
	return kept
}
