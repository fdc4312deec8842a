package main

import (
	"errors"
	"fmt"

	"CommitmentCompressor/modules/manifest"
	"CommitmentCompressor/modules/pipeline"

	"github.com/spf13/cobra"
)

type verifyOptions struct {
	expected     string
	expectedFile string
	manifestFile string
}

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	vOpts := &verifyOptions{}

	verifyCmd := &cobra.Command{
		Use:   "verify [artifact]",
		Short: "Check artifacts compress to their expected digests",
		Long: `
Check a single artifact against --expected or --expected-file, e.g. the
generated bundle-circuit/digest_1, or every entry of a --manifest.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := vOpts.entries(opts, args)
			if err != nil {
				return err
			}
			return verifyEntries(cmd, opts, entries)
		},
	}

	verifyCmd.Flags().StringVar(&vOpts.expected, "expected", "", "Expected digest, 64 hex chars with optional 0x prefix.")
	verifyCmd.Flags().StringVar(&vOpts.expectedFile, "expected-file", "", "File holding the expected digest.")
	verifyCmd.Flags().StringVar(&vOpts.manifestFile, "manifest", "", "YAML manifest of artifacts and expected digests.")
	verifyCmd.MarkFlagsMutuallyExclusive("expected", "expected-file", "manifest")
	verifyCmd.MarkFlagsOneRequired("expected", "expected-file", "manifest")

	return verifyCmd
}

func (v *verifyOptions) entries(opts *rootOptions, args []string) ([]manifest.Entry, error) {
	if v.manifestFile != "" {
		if len(args) != 0 {
			return nil, errors.New("verify: --manifest takes no artifact argument")
		}
		m, err := manifest.Load(v.manifestFile)
		if err != nil {
			return nil, err
		}
		return m.Entries, nil
	}

	if len(args) != 1 {
		return nil, errors.New("verify: exactly one artifact is required")
	}
	return []manifest.Entry{{
		Artifact:   args[0],
		Constant:   opts.constant,
		Digest:     v.expected,
		DigestFile: v.expectedFile,
	}}, nil
}

func verifyEntries(cmd *cobra.Command, opts *rootOptions, entries []manifest.Entry) error {
	w := cmd.OutOrStdout()
	mismatches := 0

	for i := range entries {
		entry := &entries[i]

		expected, err := entry.Expected()
		if err != nil {
			return err
		}

		pOpts := opts.pipelineOptions()
		if entry.Constant != "" {
			pOpts.Constant = entry.Constant
		}
		res, err := pipeline.Run(entry.Artifact, pOpts)
		if err != nil {
			return err
		}

		if res.Digest != expected {
			mismatches++
			mismatchColor.Fprint(w, "MISMATCH")
			fmt.Fprintf(w, " %s got %s expected %s\n", entry.Artifact, res.Digest, expected)
			continue
		}

		opts.logger.Debug().Str("artifact", entry.Artifact).Str("digest", res.Digest.String()).Msg("verified")
		matchColor.Fprint(w, "OK")
		fmt.Fprintf(w, " %s %s\n", entry.Artifact, res.Digest)
	}

	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d artifacts", errMismatch, mismatches, len(entries))
	}
	return nil
}
