package examples

import (
	"errors"
	"fmt"

	"arbor/pkg/arbor"

	"github.com/sirupsen/logrus"
)

// store is an in-memory resource shared by the tests of the lifecycle suite.
type store struct {
	open  bool
	items map[string]int
}

func (s *store) connect() error {
	if s.open {
		return errors.New("store already open")
	}
	s.open = true
	s.items = make(map[string]int)
	return nil
}

func (s *store) close() error {
	if !s.open {
		return errors.New("store not open")
	}
	s.open = false
	return nil
}

func lifecycle(g *arbor.Group) {
	s := &store{}

	g.BeforeAll(func() error {
		logrus.Info("Connecting to the store")
		return s.connect()
	})
	g.AfterAll(func() error {
		logrus.Info("Disconnecting from the store")
		return s.close()
	})

	g.BeforeEach(func() error {
		s.items["seed"] = 1
		return nil
	})
	g.AfterEach(func() error {
		clear(s.items)
		return nil
	})

	g.Test("starts seeded", func() error {
		return expectEqual(1, len(s.items))
	})

	g.Group("writes", func(g *arbor.Group) {
		g.BeforeEach(func() error {
			s.items["extra"] = 2
			return nil
		})

		g.Test("see both hooks", func() error {
			return expectEqual(2, len(s.items))
		})
		g.Test("are isolated", func() error {
			s.items["third"] = 3
			return expectEqual(3, len(s.items))
		})
	})

	g.Test("is reset after nested tests", func() error {
		if _, ok := s.items["extra"]; ok {
			return fmt.Errorf("unexpected item 'extra'")
		}
		return nil
	})
}
