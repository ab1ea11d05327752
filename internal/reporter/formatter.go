package reporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const SEPARATOR_CHAR = "-"

// Returns the width of the terminal. If it cannot be determined, it returns
// a default value of 80.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// Prints a separator line with a title. The title is more or less left
// aligned.
//
// Example:
//
//	--- MyTitle ---------------------------------------
func printSeparatorWithTitle(w io.Writer, width int, title string) {
	preTitle := "--- "
	titleWidth := len(title) + len(preTitle)
	separatorWidth := max(width-titleWidth-1, 0)
	fmt.Fprintf(w, "%s%s %s\n", preTitle, title, strings.Repeat(SEPARATOR_CHAR, separatorWidth))
}

func printSeparator(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat(SEPARATOR_CHAR, width))
}

// Indents a node name by its depth below the suite root.
func indentName(name string, depth int) string {
	if depth <= 0 {
		return name
	}

	return strings.Repeat("  ", depth-1) + "└─ " + name
}
