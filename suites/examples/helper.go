package examples

import (
	"fmt"

	"arbor/pkg/arbor"
)

// expectEqual is a tiny assertion for test bodies.
func expectEqual[T comparable](expected, actual T) error {
	if expected != actual {
		return fmt.Errorf("expected %v, got %v", expected, actual)
	}

	return nil
}

type binaryCase struct {
	a, b, expected int
}

// Adds one test per case to g. Helpers like this are the way to share tree
// shapes between suites.
func binaryCases(g *arbor.Group, symbol string, op func(int, int) int, cases []binaryCase) {
	for _, c := range cases {
		g.Test(fmt.Sprintf("%d %s %d = %d", c.a, symbol, c.b, c.expected), func() error {
			return expectEqual(c.expected, op(c.a, c.b))
		})
	}
}
