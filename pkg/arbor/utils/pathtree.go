package utils

import (
	"slices"
	"strings"
)

// PathTree is a nested set of slash separated paths. It marshals to JSON as
// nested objects.
type PathTree map[string]PathTree

func NewPathTree() PathTree {
	return make(PathTree)
}

func segments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
}

func (t PathTree) Add(path string) {
	current := t
	for _, segment := range segments(path) {
		next, ok := current[segment]
		if !ok {
			next = make(PathTree)
			current[segment] = next
		}
		current = next
	}
}

func (t PathTree) Contains(path string) bool {
	current := t
	for _, segment := range segments(path) {
		next, ok := current[segment]
		if !ok {
			return false
		}
		current = next
	}

	return true
}

// Paths returns every path in the tree, including intermediate ones, sorted.
func (t PathTree) Paths() []string {
	paths := make([]string, 0)
	t.walk("", func(path string) {
		paths = append(paths, path)
	})
	slices.Sort(paths)

	return paths
}

func (t PathTree) walk(prefix string, visit func(string)) {
	for segment, child := range t {
		path := segment
		if prefix != "" {
			path = prefix + "/" + segment
		}
		visit(path)
		child.walk(path, visit)
	}
}
