package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/pkg/logging"
	"github.com/spf13/cobra"
)

func newDemoCmd(e *env) *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Sample a key pair, a message and a nonce, then encrypt and decrypt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runDemo(cmd.OutOrStdout(), reveal)
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal-secret", false, "print the private key and the nonce")
	return cmd
}

var (
	headerColor = color.New(color.FgYellow, color.Bold)
	okColor     = color.New(color.FgGreen)
)

func section(w io.Writer, title string) {
	bar := strings.Repeat("-", 20)
	_, _ = headerColor.Fprintf(w, "%s %s %s", bar, title, bar)
	_, _ = fmt.Fprint(w, "\n\n")
}

func (e *env) runDemo(w io.Writer, reveal bool) error {
	start := time.Now()
	group := e.group
	bits := e.cfg.SampleBits(group)

	sk, err := elgamal.GenerateKey(e.rand, group)
	if err != nil {
		return err
	}
	m, err := elgamal.SampleElement(e.rand, group, bits)
	if err != nil {
		return errors.WithMessage(err, "sample message")
	}
	r, err := elgamal.SampleElement(e.rand, group, bits)
	if err != nil {
		return errors.WithMessage(err, "sample nonce")
	}

	ct, err := sk.PublicKey.Encrypt(m, r)
	if err != nil {
		return err
	}
	decrypted, err := sk.Decrypt(ct)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if decrypted.Eq(m) != 1 {
		return errors.New("demo: decrypted plaintext does not match")
	}

	secret, nonce := logging.Placeholder(), logging.Placeholder()
	if reveal {
		secret, nonce = sk.X.Big().String(), r.Big().String()
	}

	section(w, "Key generation")
	_, _ = fmt.Fprintf(w, "The prime is p = %s\nThe value of g = %s\n", group.P.Big(), group.G.Big())
	_, _ = fmt.Fprintf(w, "Public key is (y, g, p) = (%s, %s, %s)\nPrivate key is x = %s\n\n\n",
		sk.Y.Big(), group.G.Big(), group.P.Big(), secret)

	section(w, "Encryption")
	_, _ = fmt.Fprintf(w, "Plaintext (randomly generated) is m = %s\nThe random number is r = %s\nCiphertext is c = (%s, %s)\n\n\n",
		m.Big(), nonce, ct.C1.Big(), ct.C2.Big())

	section(w, "Decryption")
	_, _ = fmt.Fprintf(w, "Ciphertext to be decrypted c = (%s, %s)\n", ct.C1.Big(), ct.C2.Big())
	_, _ = okColor.Fprintf(w, "Decrypted plaintext is m = %s", decrypted.Big())
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintf(w, "\nTime taken to run (seconds): %f\n", elapsed.Seconds())
	return nil
}
