package devops

import "fmt"

type Group struct {
	printer *Printer
}

// Opens a new group and adds it to the stack.
func (p *Printer) OpenGroup(name string) *Group {
	newGroup := &Group{printer: p}
	p.groups = append(p.groups, newGroup)
	fmt.Fprintf(p.out, "##[group]%s\n", name)
	return newGroup
}

// Closes the group and removes all groups above it from the stack.
// This is done by popping the stack until we reach the group we want to close.
func (g *Group) Close() {
	p := g.printer
	for index := len(p.groups) - 1; index >= 0; index-- {
		// Pop the last group from the stack
		last := p.groups[index]
		p.groups = p.groups[:index]
		fmt.Fprintln(p.out, "##[endgroup]")
		if last == g {
			break
		}
	}
}
