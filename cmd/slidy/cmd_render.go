package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy-cli/render"
)

func runRender(cmd *cobra.Command, args []string) error {
	label, err := render.ParseLabel(renderFlags.label)
	if err != nil {
		return err
	}
	coloring, err := render.ParseColoring(renderFlags.coloring)
	if err != nil {
		return err
	}

	state, err := app.firstState(optionalArg(args))
	if err != nil {
		return err
	}

	f, err := os.Create(renderFlags.output)
	if err != nil {
		return err
	}
	defer f.Close()

	r := &render.Renderer{
		Label:    label,
		Coloring: coloring,
		TileSize: renderFlags.tileSize,
	}
	if err := r.Render(f, state); err != nil {
		return err
	}
	return f.Close()
}
