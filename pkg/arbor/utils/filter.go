package utils

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// A filter that matches names exactly.
type StringFilter struct {
	emptyIsAny bool
	contents   map[string]bool
}

func NewStringFilterFromSlice(slice []string) *StringFilter {
	contents := make(map[string]bool)
	for _, item := range slice {
		contents[item] = true
	}

	return &StringFilter{true, contents}
}

// Force the filter to match nothing if it is empty.
func (f *StringFilter) SetStrict() {
	f.emptyIsAny = false
}

func (f *StringFilter) Match(item string) bool {
	if len(f.contents) == 0 {
		return f.emptyIsAny
	}

	return f.contents[item]
}

// Unmatched returns the names of the filter that are not in items, sorted.
// It is used to report selectors that chose nothing.
func (f *StringFilter) Unmatched(items []string) []string {
	found := make(map[string]bool, len(items))
	for _, item := range items {
		found[item] = true
	}

	unmatched := make([]string, 0)
	for item := range f.contents {
		if !found[item] {
			unmatched = append(unmatched, item)
		}
	}
	slices.Sort(unmatched)

	return unmatched
}

// A filter that matches slash separated namespaces. Patterns may use
// doublestar globs. A recursive filter also matches every namespace below a
// pattern.
type PathFilter struct {
	emptyIsAny bool
	recursive  bool
	patterns   []string
}

func NewPathFilterFromSlice(slice []string, recursive bool) (*PathFilter, error) {
	patterns := make([]string, 0, len(slice))
	for _, item := range slice {
		item = strings.Trim(item, "/")
		if !doublestar.ValidatePattern(item) {
			return nil, fmt.Errorf("invalid namespace pattern '%s'", item)
		}
		patterns = append(patterns, item)
	}

	return &PathFilter{true, recursive, patterns}, nil
}

// Force the filter to match nothing if it is empty.
func (f *PathFilter) SetStrict() {
	f.emptyIsAny = false
}

func (f *PathFilter) Match(item string) bool {
	if len(f.patterns) == 0 {
		return f.emptyIsAny
	}

	item = strings.Trim(item, "/")
	for _, pattern := range f.patterns {
		if matchPath(pattern, item) {
			return true
		}

		if f.recursive && (pathIsBase(pattern, item) || matchPath(pattern+"/**", item)) {
			return true
		}
	}

	return false
}

func matchPath(pattern, path string) bool {
	// Patterns are validated on construction.
	ok, _ := doublestar.Match(pattern, path)
	return ok
}

// Returns whether `base` is a base of `path`.
//
// For example:
//
//	pathIsBase("a/b/c", "a/b/c/d/e") == true
//	pathIsBase("a/b/c", "a/b/c") == true
//	pathIsBase("a/b/c", "a/b") == false
//	pathIsBase("a/b/z", "a/b/c/d") == false
//	pathIsBase("a/b", "a/bc") == false
func pathIsBase(base, path string) bool {
	if base == "" {
		return true
	}

	return path == base || strings.HasPrefix(path, base+"/")
}
