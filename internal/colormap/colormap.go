// Package colormap assigns display colors to grouped taxa for
// pollen-diagram plotting. Given an ordered taxon→group mapping and an
// optional configuration, it builds one translation key (group→color)
// and applies it to every taxon.
//
// The configuration options are not mutually exclusive: they are
// applied as an ordered chain of policies (color scheme, explicit
// colors, greyscale, colorblind, automatic default), and a later
// policy may overwrite the key produced by an earlier one. Recoverable
// conflicts produce warnings and a documented substitute; fatal
// misconfiguration aborts with a *ConfigError.
package colormap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/palette"
)

// DefaultColor is the near-black baseline every group starts from. It
// is also the greyscale output and the fallback when no registered
// palette can cover the group set.
const DefaultColor = "#0d0d0d"

// Item is one taxon together with the group it belongs to. Items are
// ordered; the result preserves their order and names.
type Item struct {
	Name  string
	Group string
}

// FromValues builds items from a bare sequence of values: each value
// is both its own item and its own group.
func FromValues(values []string) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Name: v, Group: v}
	}
	return items
}

// Assignment is one taxon with its resolved color.
type Assignment struct {
	Item  string
	Group string
	Color string
}

// Warnings collects the non-fatal diagnostics of one resolution.
// The resolution still completed; callers decide where to print them.
type Warnings []string

// ConfigError reports fatal misconfiguration: unsupported keys,
// unknown palettes, invalid or miscounted explicit colors, or
// unverifiable colorblind requests. The message names the offending
// values.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// CreateColorMap resolves one color per taxon. Every distinct group
// receives exactly one color from the translation key; taxa sharing a
// group share a color. Warnings are returned even when err is non-nil,
// since earlier policies may have warned before a later one failed.
func CreateColorMap(items []Item, cfg Config, reg palette.Registry) ([]Assignment, Warnings, error) {
	if len(items) == 0 {
		return []Assignment{}, nil, nil
	}

	r := newResolution(items, cfg, reg)

	steps := []func() error{
		r.applyScheme,
		r.applyColors,
		r.applyGreyscale,
		r.applyColorblind,
		r.applyDefault,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, r.warnings, err
		}
	}

	result := make([]Assignment, len(items))
	for i, item := range items {
		result[i] = Assignment{
			Item:  item.Name,
			Group: item.Group,
			Color: r.key[item.Group],
		}
	}
	return result, r.warnings, nil
}

// resolution is the mutable state threaded through the policy chain.
type resolution struct {
	cfg      Config
	reg      palette.Registry
	groups   []string
	key      map[string]string
	warnings Warnings
}

func newResolution(items []Item, cfg Config, reg palette.Registry) *resolution {
	r := &resolution{
		cfg: cfg,
		reg: reg,
		key: make(map[string]string),
	}
	for _, item := range items {
		if _, seen := r.key[item.Group]; !seen {
			r.groups = append(r.groups, item.Group)
			r.key[item.Group] = DefaultColor
		}
	}
	return r
}

func (r *resolution) warnf(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// resetKey returns every group to the greyscale baseline.
func (r *resolution) resetKey() {
	for _, g := range r.groups {
		r.key[g] = DefaultColor
	}
}

// assign overwrites the key positionally, in group discovery order.
// colors must have one entry per group.
func (r *resolution) assign(colors []string) {
	for i, g := range r.groups {
		r.key[g] = colors[i]
	}
}

func (r *resolution) isGroup(name string) bool {
	_, ok := r.key[name]
	return ok
}

// fetch pulls len(groups) colors from the named palette into the key.
func (r *resolution) fetch(name string) error {
	colors, err := r.reg.Colors(name, len(r.groups))
	if err != nil {
		return fmt.Errorf("fetching colors from palette %q: %w", name, err)
	}
	r.assign(colors)
	return nil
}

// applyScheme handles the colorScheme option, including the
// colorblind-safety substitution and the too-many-groups fallbacks.
func (r *resolution) applyScheme() error {
	if r.cfg.Scheme == "" {
		return nil
	}

	scheme := r.cfg.Scheme
	info, known := palette.Find(r.reg, scheme)

	if r.cfg.Colorblind && known && !info.ColorblindSafe {
		r.warnf("color scheme %q is not colorblind safe; searching for a colorblind-safe %s palette", scheme, info.Category)
		sub, found := palette.First(r.reg, func(p palette.Info) bool {
			return p.MaxColors >= info.MaxColors && p.Category == info.Category && p.ColorblindSafe
		})
		if found {
			scheme = sub.Name
			info = sub
		}
	}

	if r.cfg.hasColors() {
		// The explicit-colors policy runs next and wins.
		r.warnf("explicit colors supplied; color scheme %q is ignored", r.cfg.Scheme)
		return nil
	}

	if !known {
		return configErrorf("unknown color scheme %q, valid schemes are: %s",
			r.cfg.Scheme, strings.Join(palette.Names(r.reg), ", "))
	}

	n := len(r.groups)
	if n > info.MaxColors {
		if n <= palette.MaxGroups(r.reg) {
			r.warnf("%d groups exceed the %d colors of scheme %q; substituting Set3", n, info.MaxColors, scheme)
			return r.fetch("Set3")
		}
		r.warnf("%d groups exceed the %d-color ceiling of the palette registry; falling back to greyscale", n, palette.MaxGroups(r.reg))
		r.resetKey()
		return nil
	}
	return r.fetch(scheme)
}

// applyColors handles user-supplied explicit colors, either named by
// group or positional.
func (r *resolution) applyColors() error {
	if !r.cfg.hasColors() {
		return nil
	}
	if len(r.cfg.Colors) > 0 && len(r.cfg.ColorList) > 0 {
		return configErrorf("colors must be either named by group or positional, not both")
	}

	supplied := r.cfg.ColorList
	named := len(r.cfg.Colors) > 0
	if named {
		supplied = make([]string, 0, len(r.cfg.Colors))
		for _, c := range r.cfg.Colors {
			supplied = append(supplied, c)
		}
	}

	var invalid []string
	for _, c := range supplied {
		if !IsKnownColorName(c) && !IsHexColor(c) {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return configErrorf("invalid color value(s): %s (use a known color name or #RGB/#RRGGBB hex)",
			strings.Join(invalid, ", "))
	}

	if len(supplied) != len(r.groups) {
		return configErrorf("got %d colors for %d groups", len(supplied), len(r.groups))
	}

	if !named {
		r.warnf("colors are not named by group; assigning them positionally in group discovery order")
		r.assign(r.cfg.ColorList)
		return nil
	}

	var unknown []string
	for name := range r.cfg.Colors {
		if !r.isGroup(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return configErrorf("colors name unknown group(s): %s", strings.Join(unknown, ", "))
	}

	for name, c := range r.cfg.Colors {
		r.key[name] = c
	}
	return nil
}

// applyGreyscale resets the key to the baseline, overriding whatever
// an earlier policy produced.
func (r *resolution) applyGreyscale() error {
	if !r.cfg.Greyscale {
		return nil
	}
	if r.cfg.Scheme != "" || r.cfg.hasColors() || r.cfg.Colorblind {
		r.warnf("greyscale overrides the other color options; they are ignored")
	}
	r.resetKey()
	return nil
}

// applyColorblind picks the first colorblind-safe palette big enough
// for the group set. With a colorScheme present the safety check
// already happened in applyScheme.
func (r *resolution) applyColorblind() error {
	if !r.cfg.Colorblind || r.cfg.Scheme != "" {
		return nil
	}
	if r.cfg.hasColors() {
		return configErrorf("cannot verify that user-supplied colors are colorblind safe; drop either colors or colorblind")
	}
	if r.cfg.Greyscale {
		return configErrorf("greyscale output cannot be colorblind rated; drop either greyscale or colorblind")
	}

	n := len(r.groups)
	p, found := palette.First(r.reg, func(p palette.Info) bool {
		return p.MaxColors >= n && p.ColorblindSafe
	})
	if !found {
		r.warnf("no colorblind-safe palette supports %d groups; falling back to greyscale", n)
		r.resetKey()
		return nil
	}
	return r.fetch(p.Name)
}

// applyDefault runs only for an empty configuration: the first
// qualitative palette big enough for the group set.
func (r *resolution) applyDefault() error {
	if !r.cfg.empty() {
		return nil
	}

	n := len(r.groups)
	p, found := palette.First(r.reg, func(p palette.Info) bool {
		return p.Category == palette.Qualitative && p.MaxColors >= n
	})
	if !found {
		r.warnf("no qualitative palette supports %d groups; falling back to greyscale", n)
		r.resetKey()
		return nil
	}
	return r.fetch(p.Name)
}
