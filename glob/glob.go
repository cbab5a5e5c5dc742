// Package glob restricts relay targets to channels whose names match a set
// of glob patterns.
package glob

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/herald"
)

var _ herald.ChannelFilter = (*Filter)(nil)

// Filter allows a channel when its name matches any pattern. Matching is
// case-insensitive; channel names on most platforms are lower case already.
type Filter struct {
	patterns []string
}

// NewFilter validates patterns and returns a Filter. Blank patterns are
// ignored. A Filter with no patterns allows every channel.
func NewFilter(patterns []string) (*Filter, error) {
	f := &Filter{}
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid channel pattern: %q", p)
		}
		f.patterns = append(f.patterns, p)
	}
	return f, nil
}

// Patterns returns the normalized patterns.
func (f *Filter) Patterns() []string {
	return f.patterns
}

// Allow reports whether ch's name matches a pattern.
func (f *Filter) Allow(ch herald.Channel) bool {
	if len(f.patterns) == 0 {
		return true
	}
	name := strings.ToLower(ch.Name)
	for _, p := range f.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
