package reporter

import (
	"fmt"
	"strings"

	"arbor/internal/testmgr"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// TestSummaryStatus is the overall verdict of a run.
type TestSummaryStatus int

const (
	TestStatusOk TestSummaryStatus = iota
	TestStatusFailed
	TestStatusError

	// No test ran and no suite was skipped.
	TestStatusEmpty
)

var summaryStatuses = map[TestSummaryStatus]struct {
	name  string
	color *color.Color
}{
	TestStatusOk:     {"OK", color.New(color.FgGreen)},
	TestStatusFailed: {"FAILED", color.New(color.FgRed)},
	TestStatusError:  {"ERROR", color.New(color.FgRed, color.Bold)},
	TestStatusEmpty:  {"EMPTY", color.New(color.FgYellow)},
}

func (ts TestSummaryStatus) String() string {
	if status, ok := summaryStatuses[ts]; ok {
		return status.name
	}
	return "UNKNOWN"
}

func (ts TestSummaryStatus) StringColor() string {
	if status, ok := summaryStatuses[ts]; ok {
		return status.color.Sprint(status.name)
	}
	return ts.String()
}

// IsBad reports whether the verdict should fail the run.
func (ts TestSummaryStatus) IsBad() bool {
	return ts == TestStatusFailed || ts == TestStatusError
}

// TestSummary counts the outcome of every test of a run. Groups are not
// counted as tests, but a group that failed on its own (a beforeAll or
// afterAll hook) is counted in groupFailures.
type TestSummary struct {
	total         int
	passed        int
	failed        int
	skipped       int
	errored       int
	groupFailures int
	skippedSuites int
}

func newSummaryFromTestManager(tm *testmgr.Manager) TestSummary {
	var summary TestSummary

	for _, testCase := range tm.TestCases() {
		if !testCase.IsTest() {
			switch {
			case testCase.Status().IsBad():
				summary.groupFailures++
			case testCase.Status().Skipped():
				summary.skippedSuites++
			}
			continue
		}

		summary.total++
		switch testCase.Status() {
		case testmgr.TestCaseStatusPassed:
			summary.passed++
		case testmgr.TestCaseStatusFailed:
			summary.failed++
		case testmgr.TestCaseStatusSkipped:
			summary.skipped++
		case testmgr.TestCaseStatusError:
			summary.errored++
		default:
			panic(fmt.Sprintf("invalid test case status '%s' for '%s'", testCase.Status(), testCase.FullName()))
		}
	}

	return summary
}

func (s TestSummary) Status() TestSummaryStatus {
	if s.errored > 0 || s.groupFailures > 0 {
		return TestStatusError
	}
	if s.failed > 0 {
		return TestStatusFailed
	}
	if s.total == 0 && s.skippedSuites == 0 {
		return TestStatusEmpty
	}
	return TestStatusOk
}

func (s TestSummary) Summary() string {
	var out []string

	if s.failed > 0 {
		out = append(out, fmt.Sprintf("failed: %s", humanize.Comma(int64(s.failed))))
	}
	if s.errored > 0 {
		out = append(out, fmt.Sprintf("errored: %s", humanize.Comma(int64(s.errored))))
	}
	if s.groupFailures > 0 {
		out = append(out, fmt.Sprintf("failed groups: %s", humanize.Comma(int64(s.groupFailures))))
	}
	if s.skipped > 0 {
		out = append(out, fmt.Sprintf("skipped: %s", humanize.Comma(int64(s.skipped))))
	}
	if s.skippedSuites > 0 {
		out = append(out, fmt.Sprintf("skipped suites: %s", humanize.Comma(int64(s.skippedSuites))))
	}

	out = append(out, fmt.Sprintf("passed: %s", humanize.Comma(int64(s.passed))))
	out = append(out, fmt.Sprintf("total: %s", humanize.Comma(int64(s.total))))

	return strings.Join(out, "; ")
}
