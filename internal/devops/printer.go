package devops

import (
	"fmt"
	"io"
)

// Printer writes Azure DevOps logging commands.
type Printer struct {
	out io.Writer

	// Groups function as a stack, so we keep track of the groups in a stack.
	groups []*Group
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		groups: make([]*Group, 0),
	}
}

func (p *Printer) LogError(msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

func (p *Printer) LogWarning(msg string, a ...any) {
	fmt.Fprintf(p.out, "##vso[task.logissue type=warning]%s\n", fmt.Sprintf(msg, a...))
}
