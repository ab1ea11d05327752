package examples

import (
	"fmt"

	"arbor/pkg/arbor"
)

func arithmetic(g *arbor.Group) {
	g.Group("addition", func(g *arbor.Group) {
		binaryCases(g, "+", func(a, b int) int { return a + b }, []binaryCase{
			{1, 1, 2},
			{2, -3, -1},
			{0, 0, 0},
		})
	})

	g.Group("multiplication", func(g *arbor.Group) {
		binaryCases(g, "*", func(a, b int) int { return a * b }, []binaryCase{
			{3, 4, 12},
			{-2, 5, -10},
		})
	})

	// One group per table, generated in a loop.
	for _, n := range []int{2, 3, 5} {
		g.Group(fmt.Sprintf("table of %d", n), func(g *arbor.Group) {
			for i := 1; i <= 3; i++ {
				g.Test(fmt.Sprintf("%d x %d", n, i), func() error {
					return expectEqual(n*i, repeatAdd(n, i))
				})
			}
		})
	}
}

func repeatAdd(n, times int) int {
	total := 0
	for range times {
		total += n
	}
	return total
}
