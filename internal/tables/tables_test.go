package tables

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/palette"
)

func TestBrowsePalettesView(t *testing.T) {
	m, err := BrowsePalettes(palette.Default())
	if err != nil {
		t.Fatalf("BrowsePalettes() error = %v", err)
	}

	view := m.View()
	// First page shows the leading qualitative palettes.
	for _, name := range []string{"Accent", "Dark2", "Paired"} {
		if !strings.Contains(view, name) {
			t.Errorf("View() does not contain palette %q", name)
		}
	}
	if !strings.Contains(view, "filtering") {
		t.Error("View() is missing the key hint footer")
	}
}

func TestBrowsePalettesQuitKeys(t *testing.T) {
	m, err := BrowsePalettes(palette.Default())
	if err != nil {
		t.Fatalf("BrowsePalettes() error = %v", err)
	}

	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			if key == "ctrl+c" {
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}
			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatalf("Update(%q) returned no command, want quit", key)
			}
		})
	}
}

func TestBrowsePalettesFilterFocus(t *testing.T) {
	m, err := BrowsePalettes(palette.Default())
	if err != nil {
		t.Fatalf("BrowsePalettes() error = %v", err)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", updated)
	}
	if !model.filterTextInput.Focused() {
		t.Error("filter input not focused after pressing /")
	}
}
