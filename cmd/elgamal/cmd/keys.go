package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/pool"
	cs_elgamal "github.com/shona13/ElGamal/pkg/common/cryptosuite/elgamal"
	com_keyopts "github.com/shona13/ElGamal/pkg/common/keyopts"
	sw_elgamal "github.com/shona13/ElGamal/pkg/cryptosuite/sw/elgamal"
	"github.com/shona13/ElGamal/pkg/keyopts"
	"github.com/shona13/ElGamal/pkg/keystore"
	"github.com/shona13/ElGamal/pkg/vault"
	"github.com/spf13/cobra"
)

// keyManager builds an in-memory key manager for the configured group.
func (e *env) keyManager() cs_elgamal.ElgamalKeyManager {
	store := keystore.NewInMemoryKeystore(vault.NewInMemoryVault(), keyopts.NewInMemoryKeyOpts())
	return sw_elgamal.NewElgamalKeyManager(store, pool.NewPool(e.cfg.Workers), &sw_elgamal.Config{
		Group:  e.group,
		Rand:   e.rand,
		Logger: e.log,
	})
}

func newKeyOpts() (com_keyopts.Options, error) {
	return keyopts.NewOptions().Set("id", uuid.New().String())
}

// readHex decodes s as hex. A leading @ names a file holding the hex text.
func readHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "@") {
		data, err := os.ReadFile(s[1:])
		if err != nil {
			return nil, err
		}
		s = string(data)
	}
	return hex.DecodeString(strings.TrimSpace(s))
}

// importKey loads an encoded key given as hex or @file into mgr.
func importKey(mgr cs_elgamal.ElgamalKeyManager, arg string) (cs_elgamal.ElgamalKey, com_keyopts.Options, error) {
	if arg == "" {
		return nil, nil, errors.New("missing --key")
	}
	data, err := readHex(arg)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "read key")
	}
	opts, err := newKeyOpts()
	if err != nil {
		return nil, nil, err
	}
	key, err := mgr.ImportKey(data, opts)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "import key")
	}
	return key, opts, nil
}

func newKeygenCmd(e *env) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := newKeyOpts()
			if err != nil {
				return err
			}
			key, err := e.keyManager().GenerateKey(opts)
			if err != nil {
				return err
			}
			priv, err := key.Bytes()
			if err != nil {
				return err
			}
			pub, err := key.PublicKey().Bytes()
			if err != nil {
				return err
			}
			id, _ := opts.Get("id")

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "key id: %s\n", id)
			_, _ = fmt.Fprintf(w, "ski: %s\n", hex.EncodeToString(key.SKI()))
			if out == "" {
				_, _ = fmt.Fprintf(w, "public key: %s\n", hex.EncodeToString(pub))
				_, _ = fmt.Fprintf(w, "private key: %s\n", hex.EncodeToString(priv))
				return nil
			}

			if err := os.WriteFile(out+".pub", []byte(hex.EncodeToString(pub)+"\n"), 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(out+".key", []byte(hex.EncodeToString(priv)+"\n"), 0o600); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(w, "wrote %s.pub and %s.key\n", out, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the keys to <out>.pub and <out>.key instead of stdout")
	return cmd
}
