package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/spf13/cobra"
)

func newEncryptCmd(e *env) *cobra.Command {
	var (
		keyArg  string
		message string
		count   int
	)
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message under a public key",
		Long: "Encrypt a message under a public key. Without --message a random\n" +
			"element of the group is sampled; --count encrypts that many random\n" +
			"messages on the worker pool.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr := e.keyManager()
			_, opts, err := importKey(mgr, keyArg)
			if err != nil {
				return err
			}

			var messages []*saferith.Nat
			switch {
			case message != "" && count > 1:
				return errors.New("--message and --count are mutually exclusive")
			case message != "":
				m, ok := new(big.Int).SetString(message, 0)
				if !ok || m.Sign() < 0 {
					return errors.Errorf("malformed message %q", message)
				}
				messages = append(messages, new(saferith.Nat).SetBig(m, m.BitLen()))
			default:
				if count < 1 {
					count = 1
				}
				bits := e.cfg.SampleBits(e.group)
				for i := 0; i < count; i++ {
					m, err := elgamal.SampleElement(e.rand, e.group, bits)
					if err != nil {
						return errors.WithMessage(err, "sample message")
					}
					messages = append(messages, m)
				}
			}

			cts, err := mgr.EncryptBatch(messages, opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, ct := range cts {
				if err := printCiphertext(w, messages[i], ct); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&keyArg, "key", "k", "", "public or private key, hex or @file")
	cmd.Flags().StringVarP(&message, "message", "m", "", "plaintext as an integer in [1, p) (default: random)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of random messages to encrypt")
	return cmd
}

func printCiphertext(w io.Writer, m *saferith.Nat, ct *elgamal.Ciphertext) error {
	data, err := ct.MarshalBinary()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "message: %s\n", m.Big())
	_, _ = fmt.Fprintf(w, "c1: %s\n", ct.C1.Big())
	_, _ = fmt.Fprintf(w, "c2: %s\n", ct.C2.Big())
	_, _ = fmt.Fprintf(w, "ciphertext: %s\n", hex.EncodeToString(data))
	return nil
}
