package colormap

import (
	"fmt"
	"sort"
	"strings"
)

// Config bundles the color options. At most one of them decides the
// final translation key, but they are applied sequentially rather than
// being truly exclusive; see the package comment.
//
// A boolean option being true is what "present" means here: command
// line flags cannot express a present-but-false option.
type Config struct {
	// Scheme names a registered palette to color the groups with.
	Scheme string
	// Colors maps group names to explicit color values.
	Colors map[string]string
	// ColorList supplies explicit color values positionally, in
	// group discovery order. Mutually exclusive with Colors.
	ColorList []string
	// Greyscale colors every group with the near-black baseline.
	Greyscale bool
	// Colorblind restricts palette selection to colorblind-safe
	// palettes.
	Colorblind bool
}

func (c Config) hasColors() bool {
	return len(c.Colors) > 0 || len(c.ColorList) > 0
}

func (c Config) empty() bool {
	return c.Scheme == "" && !c.hasColors() && !c.Greyscale && !c.Colorblind
}

// supportedKeys are the configuration-file keys ParseConfig accepts.
var supportedKeys = []string{"colorScheme", "colors", "greyscale", "colorblind"}

// ParseConfig converts a decoded configuration file (YAML or JSON)
// into a Config. Any key outside the supported set is fatal.
func ParseConfig(raw map[string]interface{}) (Config, error) {
	var cfg Config
	var unsupported []string

	for key, value := range raw {
		switch key {
		case "colorScheme":
			s, ok := value.(string)
			if !ok {
				return cfg, configErrorf("colorScheme must be a palette name, got %v", value)
			}
			cfg.Scheme = s
		case "colors":
			if err := parseColors(&cfg, value); err != nil {
				return cfg, err
			}
		case "greyscale":
			b, ok := value.(bool)
			if !ok {
				return cfg, configErrorf("greyscale must be a boolean, got %v", value)
			}
			cfg.Greyscale = b
		case "colorblind":
			b, ok := value.(bool)
			if !ok {
				return cfg, configErrorf("colorblind must be a boolean, got %v", value)
			}
			cfg.Colorblind = b
		default:
			unsupported = append(unsupported, key)
		}
	}

	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return cfg, configErrorf("unsupported configuration key(s): %s (supported: %s)",
			strings.Join(unsupported, ", "), strings.Join(supportedKeys, ", "))
	}
	return cfg, nil
}

// parseColors accepts either a group→color mapping or a bare color
// sequence. yaml.v2 decodes nested mappings with interface{} keys, so
// both map flavors must be handled.
func parseColors(cfg *Config, value interface{}) error {
	switch v := value.(type) {
	case map[string]interface{}:
		cfg.Colors = make(map[string]string, len(v))
		for name, c := range v {
			s, ok := c.(string)
			if !ok {
				return configErrorf("color for group %q must be a string, got %v", name, c)
			}
			cfg.Colors[name] = s
		}
	case map[interface{}]interface{}:
		cfg.Colors = make(map[string]string, len(v))
		for name, c := range v {
			s, ok := c.(string)
			if !ok {
				return configErrorf("color for group %v must be a string, got %v", name, c)
			}
			cfg.Colors[fmt.Sprintf("%v", name)] = s
		}
	case []interface{}:
		cfg.ColorList = make([]string, 0, len(v))
		for _, c := range v {
			s, ok := c.(string)
			if !ok {
				return configErrorf("colors must be strings, got %v", c)
			}
			cfg.ColorList = append(cfg.ColorList, s)
		}
	default:
		return configErrorf("colors must be a group→color mapping or a color list, got %v", value)
	}
	return nil
}
