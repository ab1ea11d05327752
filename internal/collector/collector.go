package collector

import (
	"arbor/internal/arborerror"
	"arbor/pkg/arbor/core"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ConstructionError is stored on the placeholder of a suite whose tree could
// not be built.
type ConstructionError struct {
	Suite string
	Err   error
}

func newConstructionError(suite string, cause error) *ConstructionError {
	return &ConstructionError{
		Suite: suite,
		Err:   errors.Wrapf(cause, "failed to construct suite '%s'", suite),
	}
}

func (ce *ConstructionError) Error() string {
	return ce.Err.Error()
}

func (ce *ConstructionError) Unwrap() error {
	return ce.Err
}

// Discover builds the tree of every entry point and gathers them, in order,
// under a container named name. It never fails: an entry point that cannot be
// built is replaced by a test that reports the construction error, and an
// entry point carrying a skip reason is replaced by a skipped group without
// being built.
func Discover(name string, entryPoints []core.EntryPoint, log *logrus.Logger) *core.Group {
	if log == nil {
		log = logrus.New()
	}

	children := make([]core.Node, 0, len(entryPoints))
	seen := make(map[string]bool)

	for _, entryPoint := range entryPoints {
		log.Tracef("Discovering suite '%s'", entryPoint.Name)

		if seen[entryPoint.Name] {
			err := newConstructionError(entryPoint.Name, errors.New("suite name is not unique"))
			log.WithError(err).Errorf("Suite '%s' registered more than once", entryPoint.Name)
			children = append(children, core.NewFailedTest(entryPoint.Name, core.Location{}, err))
			continue
		}
		seen[entryPoint.Name] = true

		if entryPoint.SkipReason != "" {
			log.Debugf("Suite '%s' is skipped: %s", entryPoint.Name, entryPoint.SkipReason)
			children = append(children, core.NewSkippedGroup(entryPoint.Name, entryPoint.SkipReason))
			continue
		}

		root, err := construct(entryPoint)
		if err != nil {
			log.WithError(err).Errorf("Failed to discover suite '%s'", entryPoint.Name)
			children = append(children, core.NewFailedTest(entryPoint.Name, core.Location{}, err))
			continue
		}

		log.Debugf("Discovered suite '%s' with %d top level nodes", entryPoint.Name, len(root.Children()))
		children = append(children, root)
	}

	return core.NewContainer(name, children)
}

func construct(entryPoint core.EntryPoint) (*core.Group, error) {
	if entryPoint.Build == nil {
		return nil, newConstructionError(entryPoint.Name, errors.New("no construction routine"))
	}

	var root *core.Group
	err := arborerror.CatchPanic(func() error {
		var err error
		root, err = entryPoint.Build()
		return err
	})
	if err != nil {
		return nil, newConstructionError(entryPoint.Name, err)
	}

	if root == nil {
		return nil, newConstructionError(entryPoint.Name, errors.New("construction returned no suite"))
	}

	return root, nil
}
