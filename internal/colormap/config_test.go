package colormap

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want Config
	}{
		{
			name: "empty",
			raw:  map[string]interface{}{},
			want: Config{},
		},
		{
			name: "scheme and colorblind",
			raw:  map[string]interface{}{"colorScheme": "Dark2", "colorblind": true},
			want: Config{Scheme: "Dark2", Colorblind: true},
		},
		{
			name: "greyscale",
			raw:  map[string]interface{}{"greyscale": true},
			want: Config{Greyscale: true},
		},
		{
			name: "named colors",
			raw: map[string]interface{}{
				"colors": map[string]interface{}{"Trees": "green", "Herbs": "#ffcc00"},
			},
			want: Config{Colors: map[string]string{"Trees": "green", "Herbs": "#ffcc00"}},
		},
		{
			name: "positional colors",
			raw: map[string]interface{}{
				"colors": []interface{}{"red", "#0d0d0d"},
			},
			want: Config{ColorList: []string{"red", "#0d0d0d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig(tt.raw)
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseConfigRejectsUnsupportedKeys(t *testing.T) {
	raw := map[string]interface{}{
		"colorScheme": "Set2",
		"colourway":   "fancy",
		"opacity":     0.5,
	}
	_, err := ParseConfig(raw)
	if err == nil {
		t.Fatal("want error for unsupported keys")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	// Both offenders named, in sorted order.
	if !strings.Contains(err.Error(), "colourway, opacity") {
		t.Errorf("error = %q, want it to name colourway and opacity", err)
	}
}

func TestParseConfigTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{"scheme not a string", map[string]interface{}{"colorScheme": 7}},
		{"greyscale not a bool", map[string]interface{}{"greyscale": "yes"}},
		{"colorblind not a bool", map[string]interface{}{"colorblind": 1}},
		{"colors scalar", map[string]interface{}{"colors": "red"}},
		{"color value not a string", map[string]interface{}{"colors": []interface{}{3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig(tt.raw); err == nil {
				t.Error("ParseConfig() = nil error, want type error")
			}
		})
	}
}

func TestParseConfigFromYAML(t *testing.T) {
	doc := `
colorScheme: Paired
colors:
  Trees: "#1B9E77"
  Shrubs: orchid
`
	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	cfg, err := ParseConfig(raw)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Scheme != "Paired" {
		t.Errorf("Scheme = %q, want %q", cfg.Scheme, "Paired")
	}
	want := map[string]string{"Trees": "#1B9E77", "Shrubs": "orchid"}
	if !reflect.DeepEqual(cfg.Colors, want) {
		t.Errorf("Colors = %v, want %v", cfg.Colors, want)
	}
}
