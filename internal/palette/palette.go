// Package palette holds the discrete palettes available for coloring
// grouped taxa, along with their metadata (maximum color count,
// category, colorblind safety).
package palette

import "fmt"

// Category classifies a palette by the kind of data it suits.
type Category int

const (
	Qualitative Category = iota
	Sequential
	Diverging
)

func (c Category) String() string {
	switch c {
	case Qualitative:
		return "qualitative"
	case Sequential:
		return "sequential"
	case Diverging:
		return "diverging"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name to its Category value.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "qualitative":
		return Qualitative, nil
	case "sequential":
		return Sequential, nil
	case "diverging":
		return Diverging, nil
	default:
		return 0, fmt.Errorf("unknown palette category: %q", s)
	}
}

// Info describes a single registered palette.
type Info struct {
	Name           string
	MaxColors      int
	Category       Category
	ColorblindSafe bool
}

// Registry is the lookup surface the resolver depends on. Palettes
// returns all registered palettes in a stable order; Colors returns
// the first count colors of the named palette.
type Registry interface {
	Palettes() []Info
	Colors(name string, count int) ([]string, error)
}

type registry struct {
	order    []Info
	swatches map[string][]string
}

// Default returns the built-in registry: the ColorBrewer palettes plus
// Paul Tol's qualitative palette. Qualitative palettes come first so
// that "first palette matching" searches prefer them for categorical
// data, then diverging, then sequential.
func Default() Registry {
	r := &registry{swatches: make(map[string][]string)}
	for _, p := range builtins {
		r.order = append(r.order, Info{
			Name:           p.name,
			MaxColors:      len(p.colors),
			Category:       p.category,
			ColorblindSafe: p.colorblindSafe,
		})
		r.swatches[p.name] = p.colors
	}
	return r
}

func (r *registry) Palettes() []Info {
	infos := make([]Info, len(r.order))
	copy(infos, r.order)
	return infos
}

func (r *registry) Colors(name string, count int) ([]string, error) {
	swatch, ok := r.swatches[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette: %q", name)
	}
	if count < 1 || count > len(swatch) {
		return nil, fmt.Errorf("palette %q supports 1 to %d colors, requested %d", name, len(swatch), count)
	}
	colors := make([]string, count)
	copy(colors, swatch[:count])
	return colors, nil
}

// Names returns all palette names in registry order, for error
// messages and shell completion.
func Names(r Registry) []string {
	palettes := r.Palettes()
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// MaxGroups returns the largest color count any registered palette
// supports. Group sets bigger than this cannot be colored from the
// registry at all.
func MaxGroups(r Registry) int {
	max := 0
	for _, p := range r.Palettes() {
		if p.MaxColors > max {
			max = p.MaxColors
		}
	}
	return max
}

// Find returns the metadata for the named palette.
func Find(r Registry, name string) (Info, bool) {
	for _, p := range r.Palettes() {
		if p.Name == name {
			return p, true
		}
	}
	return Info{}, false
}

// First returns the first registered palette satisfying the predicate.
func First(r Registry, match func(Info) bool) (Info, bool) {
	for _, p := range r.Palettes() {
		if match(p) {
			return p, true
		}
	}
	return Info{}, false
}
