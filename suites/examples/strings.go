package examples

import (
	"strings"

	"arbor/pkg/arbor"
)

func stringsSuite(g *arbor.Group) {
	words := map[string]string{
		"hello": "HELLO",
		"Go":    "GO",
		"":      "",
	}

	g.Group("upper", func(g *arbor.Group) {
		for _, input := range []string{"hello", "Go", ""} {
			g.Test("'"+input+"'", func() error {
				return expectEqual(words[input], strings.ToUpper(input))
			})
		}
	})

	g.Group("fields", func(g *arbor.Group) {
		g.Test("splits on spaces", func() error {
			return expectEqual(3, len(strings.Fields(" a b  c ")))
		})
		g.Test("empty input", func() error {
			return expectEqual(0, len(strings.Fields("")))
		})
	})
}
