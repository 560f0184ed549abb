// Package main provides the CLI for rendering detailed timer snapshots.
//
// Usage:
//
//	splits render <file>         Render every frame of a snapshot file
//	splits check <file...>       Validate snapshot files without rendering
//
// Examples:
//
//	splits render run.toml
//	splits render --cols 60 --rows 8 run.yaml
//	splits render --plain run.toml
//	splits check run.toml other.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := fang.Execute(context.Background(), rootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintf(w, "error: %v\n", err)
		}),
	); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "splits",
		Short: "Render detailed timer snapshots in the terminal",
		Long: `splits draws the detailed timer component (run timer, segment timer,
segment name, icon and comparisons) from TOML or YAML snapshot files.`,
		SilenceUsage: true,
	}
	root.AddCommand(renderCmd(), checkCmd())
	return root
}
