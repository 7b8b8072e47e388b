package cmd

import (
	"io"

	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// env is the state shared by all subcommands. It is populated once, before any
// subcommand runs, so the domain parameters exist before anything is sampled.
type env struct {
	v     *viper.Viper
	cfg   *Config
	group *elgamal.Group
	log   logging.Logger
	rand  io.Reader // nil selects crypto/rand
}

// NewRootCmd creates the elgamal command tree. It is called once in main.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

// newRootCmd builds the command tree around the entropy source rand.
func newRootCmd(rand io.Reader) *cobra.Command {
	e := &env{v: newViper(), rand: rand}

	rootCmd := &cobra.Command{
		Use:           "elgamal",
		Short:         "ElGamal encryption over a prime-order multiplicative group",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "config file (default ./elgamal.yaml or $HOME/.elgamal/elgamal.yaml)")
	flags.String(flagP, "", "group modulus p, decimal or 0x-prefixed hex (default: 3072-bit MODP prime)")
	flags.String(flagG, "", "generator g (default 2)")
	flags.Int(flagBits, 0, "bit length of sampled plaintexts (0: size of p)")
	flags.String(flagLogLevel, "", "log level: debug, info, warn, error")
	flags.Int(flagWorkers, 0, "workers for batch encryption (0: one per CPU)")
	for _, name := range []string{flagP, flagG, flagBits, flagLogLevel, flagWorkers} {
		if err := e.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newDemoCmd(e),
		newParamsCmd(e),
		newKeygenCmd(e),
		newEncryptCmd(e),
		newDecryptCmd(e),
	)
	return rootCmd
}

func (e *env) init(cmd *cobra.Command) error {
	file, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(e.v, file)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.log = logging.NewText(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))

	group, err := cfg.Group()
	if err != nil {
		return errors.WithMessage(err, "domain parameters")
	}
	e.group = group
	e.log.Debug(cmd.Context(), "loaded domain parameters", "bits", group.BitLen())
	return nil
}
