package reporter

import (
	"fmt"
	"io"
	"os"
	"time"

	"arbor/internal/testmgr"

	"github.com/hashicorp/go-multierror"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Reporter renders the records of a finished run.
type Reporter struct {
	tm    *testmgr.Manager
	out   io.Writer
	width int
}

func NewReporter(tm *testmgr.Manager) *Reporter {
	return &Reporter{
		tm:    tm,
		out:   os.Stdout,
		width: termWidth(),
	}
}

// SetOutput redirects the console report, which defaults to stdout.
func (r *Reporter) SetOutput(w io.Writer) {
	r.out = w
}

func (r *Reporter) Summary() TestSummary {
	return newSummaryFromTestManager(r.tm)
}

// PrintReport prints the captured logs of every bad record, a table per suite
// and a final result line.
func (r *Reporter) PrintReport() error {
	summary := r.Summary()

	if len(r.tm.TestCases()) == 0 {
		return fmt.Errorf("no test cases were run")
	}

	for _, testCase := range r.tm.TestCases() {
		if !testCase.Status().IsBad() {
			continue
		}

		printSeparatorWithTitle(r.out, r.width, testCase.FullName())
		fmt.Fprintf(
			r.out,
			"%s: '%s' status: %s; collected logs:\n",
			testCase.Kind(),
			testCase.FullName(),
			testCase.Status().String(),
		)
		for _, line := range testCase.LogLines() {
			fmt.Fprintln(r.out, "    ", line)
		}
	}

	for _, suite := range r.suites() {
		r.printSuiteTable(suite)
	}

	printSeparator(r.out, r.width)
	fmt.Fprintf(
		r.out,
		"TEST RESULT: %s. %s\n",
		summary.Status().StringColor(),
		summary.Summary(),
	)

	return nil
}

// Groups the records below the discovery container by suite, in start order.
// Every direct child of the container opens a new suite, so suites sharing a
// name are kept apart.
func (r *Reporter) suites() [][]*testmgr.TestCase {
	var suites [][]*testmgr.TestCase

	for _, testCase := range r.tm.TestCases() {
		switch depth := len(testCase.Path()); {
		case depth < 2:
			continue
		case depth == 2:
			suites = append(suites, []*testmgr.TestCase{testCase})
		case len(suites) > 0:
			last := len(suites) - 1
			suites[last] = append(suites[last], testCase)
		}
	}

	return suites
}

func (r *Reporter) printSuiteTable(records []*testmgr.TestCase) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("Suite: %s", records[0].Suite()))
	t.AppendHeader(table.Row{"Node", "Kind", "Status", "Duration", "Location"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Node", WidthMax: 60, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
	})

	for _, testCase := range records {
		location := ""
		if !testCase.Location().IsZero() {
			location = testCase.Location().String()
		}

		status := testCase.Status().ColorString()
		if testCase.Reason() != "" {
			status = fmt.Sprintf("%s (%s)", status, testCase.Reason())
		}

		t.AppendRow(table.Row{
			indentName(testCase.Name(), len(testCase.Path())-2),
			testCase.Kind().String(),
			status,
			testCase.RunTime().Round(time.Microsecond).String(),
			location,
		})
	}

	t.Render()
}

// ExitError returns one error per bad record, or nil if the run was clean.
func (r *Reporter) ExitError() error {
	var result *multierror.Error

	for _, testCase := range r.tm.TestCases() {
		if !testCase.Status().IsBad() {
			continue
		}

		err := fmt.Errorf("%s '%s' finished with status %s", testCase.Kind(), testCase.FullName(), testCase.Status())
		if testCase.Failure() != nil {
			err = fmt.Errorf("%w: %w", err, testCase.Failure())
		}
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}
