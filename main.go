package main

import (
	"fmt"
	"os"

	"CommitmentCompressor/modules/pipeline"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// defaultMaxLimbs is far above any 32 byte commitment, it only stops a
// pathological artifact from running the fold for long.
const defaultMaxLimbs = 1 << 16

type rootOptions struct {
	constant string
	maxLimbs int
	logLevel string

	logger zerolog.Logger
}

func (o *rootOptions) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Constant: o.constant,
		MaxLimbs: o.maxLimbs,
		Logger:   &o.logger,
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "commitment-compressor <artifact>",
		Short: "Compress the u32 commitment literal of a circuit artifact into a BN254 digest",
		Long: `
Extract the first u32 array literal of a generated commitment artifact,
fold it as base-2013265921 digits and print the 32 byte big-endian digest
as 64 lowercase hex characters.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.logger, err = newLogger(opts.logLevel, cmd.ErrOrStderr())
			return
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.Run(args[0], opts.pipelineOptions())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Digest.String())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.constant, "const", "", "Name of the constant holding the commitment, defaults to the first array literal.")
	rootCmd.PersistentFlags().IntVar(&opts.maxLimbs, "max-limbs", defaultMaxLimbs, "Reject literals with more limbs than this, 0 disables the limit.")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Diagnostic log level written to stderr.")

	rootCmd.AddCommand(
		newCompareCmd(opts),
		newVerifyCmd(opts),
		newCircuitCmd(opts),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
