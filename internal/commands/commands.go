package commands

import (
	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/palette"
)

// Context carries the dependencies every command runs with.
type Context struct {
	Registry palette.Registry
}

var Cli struct {
	Assign   AssignCmd   `cmd:"" help:"Assign display colors to grouped taxa."`
	Chart    ChartCmd    `cmd:"" help:"Bar chart of group sizes in their assigned colors."`
	Palettes PalettesCmd `cmd:"" help:"List the registered palettes."`
	Browse   BrowseCmd   `cmd:"" help:"Browse palettes interactively."`
}
