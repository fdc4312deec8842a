package main

import (
	"fmt"

	"CommitmentCompressor/modules/circuit"
	"CommitmentCompressor/modules/pipeline"

	"github.com/spf13/cobra"
)

func newCircuitCmd(opts *rootOptions) *cobra.Command {
	var withGroth16 bool

	circuitCmd := &cobra.Command{
		Use:   "circuit <artifact>",
		Short: "Check the BN254 compression circuit is satisfied by an artifact's commitment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.Run(args[0], opts.pipelineOptions())
			if err != nil {
				return err
			}

			ccs, err := circuit.Compile(uint(len(res.Limbs)))
			if err != nil {
				return err
			}
			opts.logger.Info().
				Int("constraints", ccs.GetNbConstraints()).
				Int("internal", ccs.GetNbInternalVariables()).
				Int("secret", ccs.GetNbSecretVariables()).
				Int("public", ccs.GetNbPublicVariables()).
				Msg("compiled compression circuit")

			fmt.Fprintln(cmd.ErrOrStderr(), "Checking satisfiability...")
			if err = circuit.CheckSatisfied(res.Limbs, res.Digest.Big()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s  %s\n", res.Digest, res.Path)
			fmt.Fprintln(w, "R1CS satisfied.")

			if withGroth16 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Groth16 proving and verifying...")
				if err = circuit.ProveAndVerify(res.Limbs, res.Digest.Big()); err != nil {
					return err
				}
				fmt.Fprintln(w, "Groth16 proof verified.")
			}
			return nil
		},
	}

	circuitCmd.Flags().BoolVar(&withGroth16, "groth16", false, "Also run a throwaway groth16 setup, prove and verify.")
	return circuitCmd
}
