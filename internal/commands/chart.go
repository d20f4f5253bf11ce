package commands

import (
	"fmt"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/charts"
	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/colormap"
)

type ChartCmd struct {
	File string `arg:"" help:"CSV/TSV file of taxon,group rows (- for stdin)."`
	ColorFlags
	Width int `help:"Chart width in cells; defaults to the terminal width."`
}

func (c *ChartCmd) Run(ctx *Context) error {
	cfg, err := c.buildConfig()
	if err != nil {
		return err
	}
	items, err := ReadItems(c.File)
	if err != nil {
		return err
	}

	result, warnings, err := colormap.CreateColorMap(items, cfg, ctx.Registry)
	printWarnings(warnings)
	if err != nil {
		return err
	}

	width := c.Width
	if width <= 0 {
		width = charts.TermWidth()
	}

	fmt.Println(charts.GroupBarchart(result, width))
	fmt.Print(charts.Legend(result))
	return nil
}
