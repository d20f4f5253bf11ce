package main

import (
	"github.com/alecthomas/kong"

	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/commands"
	"github.com/Uppsala-Arkeologi-Group-UAG/Paleopollen/internal/palette"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("paleopollen"),
		kong.Description("Assigns display colors to pollen taxa grouped into categories, for pollen-diagram plotting."),
	)
	err := ctx.Run(&commands.Context{Registry: palette.Default()})
	ctx.FatalIfErrorf(err)
}
