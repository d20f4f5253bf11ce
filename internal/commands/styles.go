package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

// Shared styles used across command output.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printWarnings writes resolution warnings to stderr so they never mix
// with machine-readable output on stdout.
func printWarnings(warnings colormap.Warnings) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("warning: "+w))
	}
}
