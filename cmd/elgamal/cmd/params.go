package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/shona13/ElGamal/core/hash"
	"github.com/spf13/cobra"
)

func newParamsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the configured domain parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h := hash.New()
			if err := h.WriteAny(e.group.P.Modulus, e.group.G); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "bits: %d\n", e.group.BitLen())
			_, _ = fmt.Fprintf(w, "p: %s\n", e.group.P.Big())
			_, _ = fmt.Fprintf(w, "g: %s\n", e.group.G.Big())
			_, _ = fmt.Fprintf(w, "fingerprint: %s\n", hex.EncodeToString(h.Sum()))
			return nil
		},
	}
}
