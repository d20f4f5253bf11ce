package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

const swatchBlock = "██"

// SwatchStyle returns a lipgloss style with the given color as
// foreground. Color names that lipgloss cannot parse render unstyled;
// the textual output still carries the color value.
func SwatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Swatches renders one line per assignment: a colored block, the
// taxon, its group, and the resolved color value.
func Swatches(assignments []colormap.Assignment) string {
	itemWidth, groupWidth := 0, 0
	for _, a := range assignments {
		if len(a.Item) > itemWidth {
			itemWidth = len(a.Item)
		}
		if len(a.Group) > groupWidth {
			groupWidth = len(a.Group)
		}
	}

	var b strings.Builder
	for _, a := range assignments {
		b.WriteString(SwatchStyle(a.Color).Render(swatchBlock))
		fmt.Fprintf(&b, " %-*s  %-*s  %s\n", itemWidth, a.Item, groupWidth, a.Group, a.Color)
	}
	return b.String()
}

// PaletteStrip renders a palette's colors as one contiguous strip of
// blocks.
func PaletteStrip(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(SwatchStyle(c).Render(swatchBlock))
	}
	return b.String()
}
