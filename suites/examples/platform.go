package examples

import (
	"os"
	"path/filepath"
	"runtime"

	"arbor/pkg/arbor"
)

// Tests are only declared for the platform the suite is built on.
func platform(g *arbor.Group) {
	g.Test("temp dir exists", func() error {
		info, err := os.Stat(os.TempDir())
		if err != nil {
			return err
		}
		return expectEqual(true, info.IsDir())
	})

	if runtime.GOOS == "windows" {
		g.Test("uses backslashes", func() error {
			return expectEqual(`\`, string(filepath.Separator))
		})
	} else {
		g.Test("uses slashes", func() error {
			return expectEqual("/", string(filepath.Separator))
		})
	}
}
