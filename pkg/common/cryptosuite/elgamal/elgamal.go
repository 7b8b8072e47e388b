package elgamal

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/pkg/common/keyopts"
)

type ElgamalKey interface {
	// Bytes returns the byte representation of the key.
	Bytes() ([]byte, error)

	// SKI returns the serialized key identifier.
	SKI() []byte

	// Private returns true if the key is private.
	Private() bool

	// PublicKey returns the corresponding public key part of Elgamal Key.
	PublicKey() ElgamalKey

	// PublicKeyRaw returns y together with the domain parameters.
	PublicKeyRaw() *elgamal.PublicKey

	// Encrypt returns the encryption of `message` under a fresh nonce drawn from rand, and the nonce.
	Encrypt(rand io.Reader, message *saferith.Nat) (*elgamal.Ciphertext, *elgamal.Nonce, error)

	// Decrypt recovers the plaintext of ct. It fails for public keys.
	Decrypt(ct *elgamal.Ciphertext) (*saferith.Nat, error)
}

type ElgamalKeyManager interface {
	// GenerateKey generates a new Elgamal key pair.
	GenerateKey(opts keyopts.Options) (ElgamalKey, error)

	// ImportKey imports a Elgamal key from its byte representation.
	ImportKey(data []byte, opts keyopts.Options) (ElgamalKey, error)

	// GetKey returns the Elgamal key linked to opts.
	GetKey(opts keyopts.Options) (ElgamalKey, error)

	// DeleteKey removes the Elgamal key linked to opts.
	DeleteKey(opts keyopts.Options) error

	// SampleMessage returns a random plaintext from the manager's group.
	SampleMessage() (*saferith.Nat, error)

	// Encrypt returns the encryption of `message` as ciphertext and nonce.
	Encrypt(message *saferith.Nat, opts keyopts.Options) (*elgamal.Ciphertext, *elgamal.Nonce, error)

	// EncryptBatch encrypts every message under its own fresh nonce.
	EncryptBatch(messages []*saferith.Nat, opts keyopts.Options) ([]*elgamal.Ciphertext, error)

	// Decrypt recovers the plaintext of ct with the private key linked to opts.
	Decrypt(ct *elgamal.Ciphertext, opts keyopts.Options) (*saferith.Nat, error)
}
