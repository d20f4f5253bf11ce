package colormap

import "testing"

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  bool
	}{
		{"six digit", "#0d0d0d", true},
		{"three digit", "#fff", true},
		{"uppercase", "#A6CEE3", true},
		{"mixed case", "#aBcDeF", true},
		{"missing hash", "0d0d0d", false},
		{"five digits", "#12345", false},
		{"seven digits", "#1234567", false},
		{"non-hex digit", "#0d0d0g", false},
		{"empty", "", false},
		{"hash only", "#", false},
		{"color name", "green", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHexColor(tt.color); got != tt.want {
				t.Errorf("IsHexColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestIsKnownColorName(t *testing.T) {
	tests := []struct {
		name  string
		color string
		want  bool
	}{
		{"green", "green", true},
		{"uppercase", "Green", true},
		{"dark green", "darkgreen", true},
		{"orchid", "orchid", true},
		{"not a name", "notacolor", false},
		{"hex is not a name", "#00ff00", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnownColorName(tt.color); got != tt.want {
				t.Errorf("IsKnownColorName(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}
