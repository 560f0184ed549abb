package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-splits"
	"github.com/grindlemire/go-splits/canvas"
	"github.com/grindlemire/go-splits/internal/debug"
	"github.com/grindlemire/go-splits/snapshot"
	"github.com/spf13/cobra"
)

const defaultCols = 40

type renderOptions struct {
	cols        int
	rows        int
	cellWidth   float32
	cellHeight  float32
	plain       bool
	noTrueColor bool
	verbose     bool
	debugLog    string
}

func renderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render every frame of a snapshot file",
		Long: `Render draws each frame of the snapshot file in order, separated by a
blank line. Frames share one icon cache, so an icon is decoded only on the
frame where it changes.`,
		Example: `  splits render run.toml
  splits render --cols 60 --rows 8 run.yaml
  splits render --plain --debug-log /tmp/splits.log run.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.cols, "cols", 0, "Canvas width in cells (default: terminal width, or 40)")
	cmd.Flags().IntVar(&opts.rows, "rows", 6, "Canvas height in cells")
	cmd.Flags().Float32Var(&opts.cellWidth, "cell-width", 0.2, "Widget units per cell column")
	cmd.Flags().Float32Var(&opts.cellHeight, "cell-height", 0.4, "Widget units per cell row")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print text only, without colors")
	cmd.Flags().BoolVar(&opts.noTrueColor, "no-truecolor", false, "Use the 256-color palette instead of 24-bit color")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a line per frame to stderr")
	cmd.Flags().StringVar(&opts.debugLog, "debug-log", "", "Append debug messages to this file")

	return cmd
}

func runRender(stdout, stderr io.Writer, path string, opts renderOptions) error {
	if opts.debugLog != "" {
		if err := debug.Init(opts.debugLog); err != nil {
			return err
		}
		defer debug.Close()
	}

	f, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	layout, err := f.Layout()
	if err != nil {
		return err
	}
	states, err := f.States()
	if err != nil {
		return err
	}

	cols := opts.cols
	if cols <= 0 {
		cols = terminalWidth(int(os.Stdout.Fd()), defaultCols)
	}
	c, err := canvas.New(cols, opts.rows,
		canvas.WithCellSize(opts.cellWidth, opts.cellHeight),
		canvas.WithTrueColor(!opts.noTrueColor),
	)
	if err != nil {
		return err
	}

	var icon splits.IconSlot
	defer icon.Release(c)

	for i := range states {
		c.Clear()
		if err := splits.RenderDetailedTimer(c, c.Size(), &states[i], layout, &icon); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		debug.Log("rendered frame %d (%dx%d cells, %d live textures)", i, cols, opts.rows, c.LiveTextures())
		if opts.verbose {
			_, hasIcon := icon.Icon()
			fmt.Fprintf(stderr, "frame %d: icon=%v\n", i, hasIcon)
		}

		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if opts.plain {
			if _, err := io.WriteString(stdout, c.PlainText()); err != nil {
				return err
			}
			continue
		}
		if _, err := c.WriteTo(stdout); err != nil {
			return err
		}
	}
	return nil
}
