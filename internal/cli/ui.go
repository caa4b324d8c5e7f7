package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // headings
	colorDim  = lipgloss.Color("240") // column names

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Foreground(colorDim)
)

// printTitle writes a section heading.
func printTitle(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, a...)))
}

// printHeader writes the column names of a listing.
func printHeader(w io.Writer, columns string) {
	fmt.Fprintln(w, styleHeader.Render(columns))
}
