package commands

import (
	"fmt"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/charts"
	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/palette"
)

type PalettesCmd struct {
	Category   string `help:"Only list palettes of this category." enum:"qualitative,sequential,diverging,all" default:"all"`
	Colorblind bool   `help:"Only list colorblind-safe palettes."`
}

func (p *PalettesCmd) Run(ctx *Context) error {
	var category palette.Category
	if p.Category != "all" {
		var err error
		category, err = palette.ParseCategory(p.Category)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%-10s %-7s %-12s %-11s %s\n", "Palette", "Colors", "Category", "Colorblind", "Swatch")
	for _, info := range ctx.Registry.Palettes() {
		if p.Category != "all" && info.Category != category {
			continue
		}
		if p.Colorblind && !info.ColorblindSafe {
			continue
		}
		colors, err := ctx.Registry.Colors(info.Name, info.MaxColors)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s %-7d %-12s %-11t %s\n",
			info.Name, info.MaxColors, info.Category, info.ColorblindSafe, charts.PaletteStrip(colors))
	}
	return nil
}
