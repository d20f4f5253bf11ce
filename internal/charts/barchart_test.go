package charts

import (
	"strings"
	"testing"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

func TestGroupBarchart(t *testing.T) {
	tests := []struct {
		name        string
		assignments []colormap.Assignment
		width       int
	}{
		{
			name:        "no assignments",
			assignments: nil,
			width:       80,
		},
		{
			name: "single group",
			assignments: []colormap.Assignment{
				{Item: "Pinus", Group: "Trees", Color: "#1B9E77"},
			},
			width: 80,
		},
		{
			name: "multiple groups",
			assignments: []colormap.Assignment{
				{Item: "Pinus", Group: "Trees", Color: "#1B9E77"},
				{Item: "Picea", Group: "Trees", Color: "#1B9E77"},
				{Item: "Betula", Group: "Shrubs", Color: "#D95F02"},
				{Item: "Poaceae", Group: "Grasses", Color: "#7570B3"},
			},
			width: 100,
		},
		{
			name: "narrow width",
			assignments: []colormap.Assignment{
				{Item: "Pinus", Group: "Trees", Color: "#1B9E77"},
			},
			width: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GroupBarchart(tt.assignments, tt.width)

			if len(tt.assignments) > 0 && len(result) == 0 {
				t.Error("GroupBarchart() returned empty string for non-empty assignments")
			}

			for _, a := range tt.assignments {
				if !strings.Contains(result, a.Group) {
					t.Errorf("GroupBarchart() output does not contain group %s", a.Group)
				}
			}
		})
	}
}

func TestLegendOneLinePerGroup(t *testing.T) {
	assignments := []colormap.Assignment{
		{Item: "Pinus", Group: "Trees", Color: "#1B9E77"},
		{Item: "Picea", Group: "Trees", Color: "#1B9E77"},
		{Item: "Betula", Group: "Shrubs", Color: "#D95F02"},
	}

	legend := Legend(assignments)
	lines := strings.Split(strings.TrimRight(legend, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Legend() has %d lines, want 2: %q", len(lines), legend)
	}
	if !strings.Contains(lines[0], "Trees") || !strings.Contains(lines[1], "Shrubs") {
		t.Errorf("Legend() = %q, want Trees then Shrubs", legend)
	}
}
