package reporter

import (
	"fmt"
	"os"
	"time"

	"arbor/internal/testmgr"
	"arbor/pkg/arbor/core"
	"arbor/pkg/arbor/utils"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Report is the machine readable form of a run, written by WriteFile.
type Report struct {
	RunId     string        `yaml:"runId"`
	StartTime time.Time     `yaml:"startTime"`
	Duration  string        `yaml:"duration"`
	Status    string        `yaml:"status"`
	Summary   string        `yaml:"summary"`
	Nodes     []ReportEntry `yaml:"nodes"`
}

type ReportEntry struct {
	Path     string         `yaml:"path"`
	Kind     string         `yaml:"kind"`
	Status   string         `yaml:"status"`
	Duration string         `yaml:"duration"`
	Location *core.Location `yaml:"location,omitempty"`
	Reason   string         `yaml:"reason,omitempty"`
	Failure  *ReportFailure `yaml:"failure,omitempty"`
}

type ReportFailure struct {
	Primary   string            `yaml:"primary"`
	Secondary []ReportSecondary `yaml:"secondary,omitempty"`
}

type ReportSecondary struct {
	Order string `yaml:"order"`
	Error string `yaml:"error"`
}

// BuildReport collects every record of the run into a Report stamped with a
// fresh run id.
func (r *Reporter) BuildReport() Report {
	summary := r.Summary()
	report := Report{
		RunId:     uuid.NewString(),
		StartTime: r.tm.StartTime(),
		Duration:  time.Since(r.tm.StartTime()).Round(time.Millisecond).String(),
		Status:    summary.Status().String(),
		Summary:   summary.Summary(),
		Nodes:     make([]ReportEntry, 0, len(r.tm.TestCases())),
	}

	for _, testCase := range r.tm.TestCases() {
		report.Nodes = append(report.Nodes, newReportEntry(testCase))
	}

	return report
}

func newReportEntry(testCase *testmgr.TestCase) ReportEntry {
	entry := ReportEntry{
		Path:     testCase.FullName(),
		Kind:     testCase.Kind().String(),
		Status:   testCase.Status().String(),
		Duration: testCase.RunTime().String(),
		Reason:   testCase.Reason(),
	}

	if !testCase.Location().IsZero() {
		location := testCase.Location()
		entry.Location = &location
	}

	if failure := testCase.Failure(); failure != nil {
		entry.Failure = &ReportFailure{
			Primary: cleanError(failure.Primary),
		}

		for i, err := range failure.Secondary {
			entry.Failure.Secondary = append(entry.Failure.Secondary, ReportSecondary{
				// The primary failure is the first one.
				Order: humanize.Ordinal(i + 2),
				Error: cleanError(err),
			})
		}
	}

	return entry
}

func cleanError(err error) string {
	return utils.StripANSI(err.Error())
}

// WriteFile writes the report of the run as YAML to path.
func (r *Reporter) WriteFile(path string) error {
	data, err := yaml.Marshal(r.BuildReport())
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write report to '%s': %w", path, err)
	}

	return nil
}
