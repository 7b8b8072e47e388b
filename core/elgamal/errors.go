package elgamal

import "errors"

var (
	// ErrInvalidDomainParameters is returned when p is not an odd prime or g is out of range.
	ErrInvalidDomainParameters = errors.New("elgamal: invalid domain parameters")
	// ErrInvalidSecretKey is returned when x is not in [0, p).
	ErrInvalidSecretKey = errors.New("elgamal: invalid secret key")
	// ErrInvalidPlaintext is returned when m is not a reduced element of Z*ₚ.
	ErrInvalidPlaintext = errors.New("elgamal: plaintext is not an element of Z*p")
	// ErrInvalidNonce is returned when r is not a reduced element of Z*ₚ.
	ErrInvalidNonce = errors.New("elgamal: nonce is not an element of Z*p")
	// ErrInvalidCiphertext is returned when c1 ≡ 0 (mod p) or a component is malformed.
	ErrInvalidCiphertext = errors.New("elgamal: invalid ciphertext")
)
