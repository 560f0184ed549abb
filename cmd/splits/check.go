package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-splits/snapshot"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file...>",
		Short: "Validate snapshot files without rendering",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args)
		},
	}
}

func runCheck(w io.Writer, paths []string) error {
	var failed int
	for _, path := range paths {
		if err := checkFile(path); err != nil {
			fmt.Fprintf(w, "%s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s: ok\n", path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshot file(s) invalid", failed, len(paths))
	}
	return nil
}

func checkFile(path string) error {
	f, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	if _, err := f.Layout(); err != nil {
		return err
	}
	_, err = f.States()
	return err
}
