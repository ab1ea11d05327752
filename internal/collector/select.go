package collector

import (
	"fmt"
	"strings"

	"arbor/pkg/arbor/core"
	"arbor/pkg/arbor/utils"
)

// Selector chooses entry points by suite name and by namespace. Empty
// selectors choose everything.
type Selector struct {
	Names      []string
	Namespaces []string

	// Namespace patterns also select every namespace below them.
	Recursive bool
}

// Select returns the chosen entry points in registration order. Naming a
// suite that does not exist is an error; a namespace pattern that chooses
// nothing is not.
func (s Selector) Select(entryPoints []core.EntryPoint) ([]core.EntryPoint, error) {
	nameFilter := utils.NewStringFilterFromSlice(s.Names)
	namespaceFilter, err := utils.NewPathFilterFromSlice(s.Namespaces, s.Recursive)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entryPoints))
	selected := make([]core.EntryPoint, 0, len(entryPoints))
	for _, entryPoint := range entryPoints {
		names = append(names, entryPoint.Name)

		if !nameFilter.Match(entryPoint.Name) {
			continue
		}

		if !namespaceFilter.Match(entryPoint.Namespace) {
			continue
		}

		selected = append(selected, entryPoint)
	}

	if unknown := nameFilter.Unmatched(names); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown suites: %s", strings.Join(unknown, ", "))
	}

	return selected, nil
}
