package run

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"arbor/internal/config"
	"arbor/pkg/arbor/core"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuite struct {
	entryPoints []core.EntryPoint
	azureDevops bool
	log         *logrus.Logger
}

func newFakeSuite(entryPoints ...core.EntryPoint) *fakeSuite {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &fakeSuite{entryPoints: entryPoints, log: log}
}

func (s *fakeSuite) Name() string                   { return "fake" }
func (s *fakeSuite) Logger() *logrus.Logger         { return s.log }
func (s *fakeSuite) EntryPoints() []core.EntryPoint { return s.entryPoints }
func (s *fakeSuite) AzureDevops() bool              { return s.azureDevops }
func (s *fakeSuite) EntryPoint(name string) core.EntryPoint {
	for _, entryPoint := range s.entryPoints {
		if entryPoint.Name == name {
			return entryPoint
		}
	}
	return core.EntryPoint{}
}

func entryPoints() []core.EntryPoint {
	return []core.EntryPoint{
		{
			Name:      "green",
			Namespace: "colors",
			Build: core.Suite("green", func(g *core.Group) {
				g.Test("ok", func() error { return nil })
			}),
		},
		{
			Name:      "red",
			Namespace: "colors/warm",
			Build: core.Suite("red", func(g *core.Group) {
				g.Test("ko", func() error {
					logrus.Info("measuring redness")
					return errors.New("not red enough")
				})
			}),
		},
	}
}

func TestExecuteWritesArtifacts(t *testing.T) {
	suite := newFakeSuite(entryPoints()...)
	suite.azureDevops = true
	dir := t.TempDir()

	var out bytes.Buffer
	err := execute(suite, suite.EntryPoints(), executeOpts{
		reportPath:  filepath.Join(dir, "report.yaml"),
		metricsPath: filepath.Join(dir, "metrics.prom"),
		out:         &out,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fake/red/ko")

	assert.Contains(t, out.String(), "##[group]green")
	assert.Contains(t, out.String(), "##vso[task.logissue type=error]test 'ko' failed: not red enough")
	assert.Contains(t, out.String(), "TEST RESULT:")
	assert.Contains(t, out.String(), "measuring redness")

	report, err := os.ReadFile(filepath.Join(dir, "report.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "runId:")

	metrics, err := os.ReadFile(filepath.Join(dir, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "arbor_nodes_total")
}

func TestExecuteWithoutArtifacts(t *testing.T) {
	suite := newFakeSuite(entryPoints()...)

	var out bytes.Buffer
	err := execute(suite, suite.EntryPoints()[:1], executeOpts{out: &out})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "##[group]")
}

func TestRunCmdSelectsSuites(t *testing.T) {
	suite := newFakeSuite(entryPoints()...)
	settings := &config.Settings{Verbosity: "info"}

	cmd := RunCmd{Namespaces: []string{"colors"}}
	assert.NoError(t, cmd.Run(suite, settings))

	cmd = RunCmd{Namespaces: []string{"colors"}, Recursive: true}
	assert.Error(t, cmd.Run(suite, settings))

	cmd = RunCmd{Suites: []string{"blue"}}
	assert.ErrorContains(t, cmd.Run(suite, settings), "unknown suites: blue")
}
