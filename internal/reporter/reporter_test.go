package reporter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"arbor/internal/collector"
	"arbor/internal/runner"
	"arbor/internal/testmgr"
	"arbor/pkg/arbor/core"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, entryPoints ...core.EntryPoint) *Reporter {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	tm := testmgr.NewManager(log)
	runner.New(tm, log).Run(collector.Discover("run", entryPoints, log))
	require.Zero(t, tm.Close())

	r := NewReporter(tm)
	r.SetOutput(io.Discard)
	return r
}

func passing() core.EntryPoint {
	return core.EntryPoint{
		Name: "passing",
		Build: core.Suite("passing", func(g *core.Group) {
			for _, name := range []string{"a", "b", "c"} {
				g.Test(name, func() error { return nil })
			}
		}),
	}
}

func failing() core.EntryPoint {
	return core.EntryPoint{
		Name: "failing",
		Build: core.Suite("failing", func(g *core.Group) {
			g.Group("inner", func(g *core.Group) {
				g.AfterEach(func() error { return errors.New("\x1b[31mcleanup\x1b[0m failed") })
				g.Test("bad", func() error { return errors.New("expected 1, got 2") })
			})
			g.Test("good", func() error { return nil })
		}),
	}
}

func TestSummaryVerdicts(t *testing.T) {
	tests := []struct {
		name        string
		entryPoints []core.EntryPoint
		status      TestSummaryStatus
	}{
		{name: "clean", entryPoints: []core.EntryPoint{passing()}, status: TestStatusOk},
		{name: "empty", entryPoints: nil, status: TestStatusEmpty},
		{
			name:        "skipped only",
			entryPoints: []core.EntryPoint{{Name: "s", SkipReason: "off"}},
			status:      TestStatusOk,
		},
		{
			name: "body failure",
			entryPoints: []core.EntryPoint{{
				Name: "s",
				Build: core.Suite("s", func(g *core.Group) {
					g.Test("t", func() error { return errors.New("no") })
				}),
			}},
			status: TestStatusFailed,
		},
		{
			name: "group failure",
			entryPoints: []core.EntryPoint{{
				Name: "s",
				Build: core.Suite("s", func(g *core.Group) {
					g.BeforeAll(func() error { return errors.New("no") })
					g.Test("t", func() error { return nil })
				}),
			}},
			status: TestStatusError,
		},
		{
			name:        "construction failure",
			entryPoints: []core.EntryPoint{{Name: "s", Build: func() (*core.Group, error) { panic("boom") }}},
			status:      TestStatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, tt.entryPoints...)
			assert.Equal(t, tt.status, r.Summary().Status())
		})
	}
}

func TestSummaryCounts(t *testing.T) {
	r := run(t, passing(), failing(), core.EntryPoint{Name: "off", SkipReason: "disabled"})
	summary := r.Summary()

	assert.Equal(t, 5, summary.total)
	assert.Equal(t, 1, summary.failed)
	assert.Equal(t, 4, summary.passed)
	assert.Equal(t, 1, summary.skippedSuites)
	assert.Equal(t, "failed: 1; skipped suites: 1; passed: 4; total: 5", summary.Summary())
}

func TestPrintReport(t *testing.T) {
	r := run(t, passing(), failing())
	var out bytes.Buffer
	r.SetOutput(&out)

	require.NoError(t, r.PrintReport())

	text := out.String()
	assert.Contains(t, text, "Suite: passing")
	assert.Contains(t, text, "Suite: failing")
	assert.Contains(t, text, "run/failing/inner/bad")
	assert.Contains(t, text, "expected 1, got 2")
	assert.Contains(t, text, "TEST RESULT:")
	assert.NotContains(t, text, "run/passing/a' status")
}

func TestPrintReportWithoutRecords(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	r := NewReporter(testmgr.NewManager(log))
	r.SetOutput(io.Discard)

	assert.Error(t, r.PrintReport())
}

func TestExitError(t *testing.T) {
	assert.NoError(t, run(t, passing()).ExitError())

	err := run(t, passing(), failing()).ExitError()
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1)
	assert.Contains(t, merr.Errors[0].Error(), "run/failing/inner/bad")
	assert.Contains(t, merr.Errors[0].Error(), "expected 1, got 2")
}

func TestWriteFile(t *testing.T) {
	r := run(t, failing())
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal(data, &report))

	_, err = uuid.Parse(report.RunId)
	assert.NoError(t, err)
	assert.Equal(t, TestStatusFailed.String(), report.Status)
	require.Len(t, report.Nodes, 5)

	bad := report.Nodes[3]
	assert.Equal(t, "run/failing/inner/bad", bad.Path)
	assert.Equal(t, "FAIL", bad.Status)
	require.NotNil(t, bad.Location)
	require.NotNil(t, bad.Failure)
	assert.Equal(t, "expected 1, got 2", bad.Failure.Primary)
	require.Len(t, bad.Failure.Secondary, 1)
	assert.Equal(t, "2nd", bad.Failure.Secondary[0].Order)
	assert.Contains(t, bad.Failure.Secondary[0].Error, "cleanup failed")
	assert.NotContains(t, bad.Failure.Secondary[0].Error, "\x1b")

	good := report.Nodes[4]
	assert.Equal(t, "PASS", good.Status)
	assert.Nil(t, good.Failure)
}

func TestSuitesKeepDuplicateNamesApart(t *testing.T) {
	dup := core.EntryPoint{
		Name: "dup",
		Build: core.Suite("dup", func(g *core.Group) {
			g.Test("ok", func() error { return nil })
		}),
	}
	r := run(t, dup, core.EntryPoint{Name: "other", SkipReason: "off"}, dup)

	var tables [][]string
	for _, records := range r.suites() {
		var table []string
		for _, testCase := range records {
			table = append(table, testCase.FullName()+"="+testCase.Status().String())
		}
		tables = append(tables, table)
	}

	assert.Equal(t, [][]string{
		{"run/dup=PASS", "run/dup/ok=PASS"},
		{"run/other=SKIP"},
		{"run/dup=ERROR"},
	}, tables)
}

func TestSummaryStatusNames(t *testing.T) {
	tests := []struct {
		status TestSummaryStatus
		name   string
		bad    bool
	}{
		{TestStatusOk, "OK", false},
		{TestStatusFailed, "FAILED", true},
		{TestStatusError, "ERROR", true},
		{TestStatusEmpty, "EMPTY", false},
		{TestSummaryStatus(42), "UNKNOWN", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.status.String())
		assert.Contains(t, tt.status.StringColor(), tt.name)
		assert.Equal(t, tt.bad, tt.status.IsBad(), tt.name)
	}
}
