package examples

import (
	"errors"
	"strconv"

	"arbor/pkg/arbor"

	"github.com/sirupsen/logrus"
)

func hookFailures(g *arbor.Group) {
	g.Group("broken setup", func(g *arbor.Group) {
		g.BeforeEach(func() error {
			return errors.New("fixture unavailable")
		})
		g.AfterEach(func() error {
			logrus.Info("Cleanup still runs after a failed setup")
			return nil
		})

		g.Test("never runs", func() error {
			panic("unreachable")
		})
	})

	g.Group("broken teardown", func(g *arbor.Group) {
		g.AfterEach(func() error {
			return errors.New("could not release fixture")
		})

		g.Test("fails twice", func() error {
			_, err := strconv.Atoi("forty-two")
			return err
		})
	})

	g.Group("broken group setup", func(g *arbor.Group) {
		g.BeforeAll(func() error {
			return errors.New("database is down")
		})

		g.Test("is never started", func() error { return nil })
	})

	g.Test("panics", func() error {
		var items []int
		_ = items[3]
		return nil
	})
}

func badConstruction() (*arbor.Group, error) {
	return arbor.NewSuite("bad-construction", func(g *arbor.Group) {
		g.Test("declared before the failure", func() error { return nil })
		panic("configuration missing while building the tree")
	}), nil
}
