package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/tables"
)

type BrowseCmd struct{}

// Run starts the interactive palette browser.
func (b *BrowseCmd) Run(ctx *Context) error {
	model, err := tables.BrowsePalettes(ctx.Registry)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
