package commands

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		comma   rune
		want    []colormap.Item
		wantErr bool
	}{
		{
			name:  "two columns",
			input: "Pinus,Trees\nBetula,Shrubs\nPicea,Trees\n",
			comma: ',',
			want: []colormap.Item{
				{Name: "Pinus", Group: "Trees"},
				{Name: "Betula", Group: "Shrubs"},
				{Name: "Picea", Group: "Trees"},
			},
		},
		{
			name:  "single column is its own group",
			input: "Pinus\nBetula\n",
			comma: ',',
			want: []colormap.Item{
				{Name: "Pinus", Group: "Pinus"},
				{Name: "Betula", Group: "Betula"},
			},
		},
		{
			name:  "tab separated",
			input: "Pinus\tTrees\nPoaceae\tGrasses\n",
			comma: '\t',
			want: []colormap.Item{
				{Name: "Pinus", Group: "Trees"},
				{Name: "Poaceae", Group: "Grasses"},
			},
		},
		{
			name:    "too many columns",
			input:   "Pinus,Trees,extra\n",
			comma:   ',',
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			comma:   ',',
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseItems(strings.NewReader(tt.input), tt.comma)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseItems() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseItems() = %v, want %v", got, tt.want)
			}
		})
	}
}
