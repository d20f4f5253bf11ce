package commands

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

// ColorFlags are the color options shared by the assign and chart
// commands. Flags take precedence over the configuration file.
type ColorFlags struct {
	Scheme     string   `help:"Palette to color the groups with." short:"s"`
	Color      []string `help:"Explicit color, 'Group=color' or positional; repeatable." short:"c"`
	Greyscale  bool     `help:"Color every group near-black."`
	Colorblind bool     `help:"Restrict selection to colorblind-safe palettes."`
	ConfigFile string   `name:"config" help:"YAML configuration file (colorScheme, colors, greyscale, colorblind)." type:"existingfile"`
}

// buildConfig merges the configuration file and the flags into one
// resolver configuration.
func (f *ColorFlags) buildConfig() (colormap.Config, error) {
	var cfg colormap.Config

	if f.ConfigFile != "" {
		data, err := os.ReadFile(f.ConfigFile)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
		cfg, err = colormap.ParseConfig(raw)
		if err != nil {
			return cfg, err
		}
	}

	if f.Scheme != "" {
		cfg.Scheme = f.Scheme
	}
	if len(f.Color) > 0 {
		named, positional, err := splitColorFlags(f.Color)
		if err != nil {
			return cfg, err
		}
		cfg.Colors = named
		cfg.ColorList = positional
	}
	if f.Greyscale {
		cfg.Greyscale = true
	}
	if f.Colorblind {
		cfg.Colorblind = true
	}
	return cfg, nil
}

// splitColorFlags separates 'Group=color' entries from bare positional
// colors. Mixing the two forms in one invocation is rejected here;
// the resolver would reject it anyway, with a less pointed message.
func splitColorFlags(entries []string) (map[string]string, []string, error) {
	var named map[string]string
	var positional []string
	for _, e := range entries {
		if group, color, ok := strings.Cut(e, "="); ok {
			if named == nil {
				named = make(map[string]string)
			}
			named[group] = color
			continue
		}
		positional = append(positional, e)
	}
	if len(named) > 0 && len(positional) > 0 {
		return nil, nil, fmt.Errorf("mixing named (Group=color) and positional --color values is not supported")
	}
	return named, positional, nil
}
