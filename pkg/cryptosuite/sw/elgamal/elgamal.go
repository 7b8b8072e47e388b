package elgamal

import (
	"errors"
	"io"

	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/pkg/logging"
)

var (
	ErrInvalidKey = errors.New("elgamal: invalid key")
	ErrPublicKey  = errors.New("elgamal: operation requires a private key")
	ErrGroup      = errors.New("elgamal: key belongs to a different group")
)

type Config struct {
	// Group holds the domain parameters shared by every key of the manager.
	Group *elgamal.Group

	// Rand is the entropy source. nil selects crypto/rand.
	Rand io.Reader

	// Logger receives key lifecycle events. nil selects slog.Default().
	Logger logging.Logger
}
