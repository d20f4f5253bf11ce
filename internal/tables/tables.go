// Package tables provides the interactive palette browser: a
// filterable table of every registered palette with a live swatch
// strip.
package tables

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
	teatable "github.com/evertras/bubble-table/table"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/charts"
	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/palette"
)

type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
}

// BrowsePalettes builds the browser model over every palette in the
// registry.
func BrowsePalettes(reg palette.Registry) (Model, error) {
	return paletteModel(reg)
}

func paletteModel(reg palette.Registry) (Model, error) {
	palettes := reg.Palettes()

	longestName := 0
	maxColors := 0
	rows := make([]table.Row, 0, len(palettes))
	for _, p := range palettes {
		if len(p.Name) > longestName {
			longestName = len(p.Name)
		}
		if p.MaxColors > maxColors {
			maxColors = p.MaxColors
		}
		colors, err := reg.Colors(p.Name, p.MaxColors)
		if err != nil {
			return Model{}, err
		}
		rows = append(rows, table.NewRow(table.RowData{
			"name":       p.Name,
			"max":        strconv.Itoa(p.MaxColors),
			"category":   p.Category.String(),
			"colorblind": strconv.FormatBool(p.ColorblindSafe),
			"swatch":     charts.PaletteStrip(colors),
		}))
	}

	columns := []table.Column{
		table.NewColumn("name", "Palette", max(longestName+1, 8)).WithFiltered(true),
		table.NewColumn("max", "Colors", 7),
		table.NewColumn("category", "Category", 12).WithFiltered(true),
		table.NewColumn("colorblind", "Colorblind", 11).WithFiltered(true),
		table.NewColumn("swatch", "Swatch", maxColors*2+2),
	}

	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}, nil

}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
