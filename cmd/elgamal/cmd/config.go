package cmd

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/lib/params"
	"github.com/spf13/viper"
)

const (
	flagConfig   = "config"
	flagP        = "p"
	flagG        = "g"
	flagBits     = "bits"
	flagLogLevel = "log-level"
	flagWorkers  = "workers"
)

// Config is the process configuration, read from flags, ELGAMAL_* environment
// variables and an optional elgamal.yaml, in that order of precedence.
type Config struct {
	P        string `mapstructure:"p"`
	G        string `mapstructure:"g"`
	Bits     int    `mapstructure:"bits"`
	LogLevel string `mapstructure:"log-level"`
	Workers  int    `mapstructure:"workers"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(flagP, params.DefaultPrime)
	v.SetDefault(flagG, "2")
	v.SetDefault(flagBits, 0)
	v.SetDefault(flagLogLevel, "info")
	v.SetDefault(flagWorkers, 0)

	v.SetEnvPrefix("ELGAMAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and decodes the merged settings.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("elgamal")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.elgamal")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// Group parses and validates the configured domain parameters. p and g are
// decimal, or hexadecimal with a 0x prefix.
func (c *Config) Group() (*elgamal.Group, error) {
	p, ok := new(big.Int).SetString(strings.TrimSpace(c.P), 0)
	if !ok {
		return nil, errors.Errorf("config: malformed p %q", c.P)
	}
	g, ok := new(big.Int).SetString(strings.TrimSpace(c.G), 0)
	if !ok {
		return nil, errors.Errorf("config: malformed g %q", c.G)
	}
	return elgamal.NewGroup(p, g)
}

// SampleBits returns the bit length used for plaintexts; zero means the size of p.
func (c *Config) SampleBits(group *elgamal.Group) int {
	if c.Bits == 0 {
		return group.BitLen()
	}
	return c.Bits
}
