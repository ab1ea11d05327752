// Package examples implements suites that show how test trees are built with
// ordinary Go code: loops, helpers and conditionals.
package examples

import (
	"arbor/pkg/arbor"
)

// EntryPoints returns every example suite. Suites under the "demo/failing"
// namespace fail on purpose to show how failures are reported.
func EntryPoints() []arbor.EntryPoint {
	return []arbor.EntryPoint{
		{Name: "arithmetic", Namespace: "math", Build: arbor.Suite("arithmetic", arithmetic)},
		{Name: "strings", Namespace: "text", Build: arbor.Suite("strings", stringsSuite)},
		{Name: "lifecycle", Namespace: "hooks", Build: arbor.Suite("lifecycle", lifecycle)},
		{Name: "platform", Namespace: "conditional", Build: arbor.Suite("platform", platform)},
		{Name: "unicode", Namespace: "text", SkipReason: "waiting for a normalization library"},
		{Name: "hook-failures", Namespace: "demo/failing", Build: arbor.Suite("hook-failures", hookFailures)},
		{Name: "bad-construction", Namespace: "demo/failing", Build: badConstruction},
	}
}
