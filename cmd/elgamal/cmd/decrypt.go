package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/spf13/cobra"
)

func newDecryptCmd(e *env) *cobra.Command {
	var keyArg, ctArg string
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ctArg == "" {
				return errors.New("missing --ciphertext")
			}
			mgr := e.keyManager()
			_, opts, err := importKey(mgr, keyArg)
			if err != nil {
				return err
			}
			data, err := readHex(ctArg)
			if err != nil {
				return errors.WithMessage(err, "read ciphertext")
			}
			ct := &elgamal.Ciphertext{}
			if err := ct.UnmarshalBinary(data); err != nil {
				return errors.WithMessage(err, "decode ciphertext")
			}
			m, err := mgr.Decrypt(ct, opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plaintext: %s\n", m.Big())
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyArg, "key", "k", "", "private key, hex or @file")
	cmd.Flags().StringVarP(&ctArg, "ciphertext", "c", "", "ciphertext, hex or @file")
	return cmd
}
