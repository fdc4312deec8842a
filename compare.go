package main

import (
	"errors"
	"fmt"

	"CommitmentCompressor/modules/pipeline"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errMismatch = errors.New("commitment digest mismatch")

var (
	matchColor    = color.New(color.FgGreen, color.Bold)
	mismatchColor = color.New(color.FgRed, color.Bold)
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <artifact-a> <artifact-b>",
		Short: "Check two independently generated artifacts carry the same commitment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := pipeline.Compare(args[0], args[1], opts.pipelineOptions())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s  %s\n", cmp.A.Digest, cmp.A.Path)
			fmt.Fprintf(w, "%s  %s\n", cmp.B.Digest, cmp.B.Path)

			if !cmp.Equal() {
				mismatchColor.Fprintln(w, "MISMATCH")
				return fmt.Errorf("%w: %s and %s", errMismatch, cmp.A.Path, cmp.B.Path)
			}
			matchColor.Fprintln(w, "MATCH")
			return nil
		},
	}
}
