// Package charts renders resolved color assignments to the terminal:
// swatch previews, palette strips, and a bar chart of group sizes.
package charts

import (
	"os"

	"golang.org/x/term"
)

// TermWidth returns the terminal width, falling back to
// DefaultChartWidth when stdin is not a terminal.
func TermWidth() int {
	width, _, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || width <= 0 {
		return DefaultChartWidth
	}
	return width
}
