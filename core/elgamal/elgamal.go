package elgamal

import (
	"io"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/math/sample"
)

type (
	// PublicKey is y = gˣ (mod p) together with its domain parameters.
	PublicKey struct {
		Group *Group
		Y     *saferith.Nat
	}

	// SecretKey is x ∈ [0, p). It must never leave its owner.
	SecretKey struct {
		PublicKey
		X *saferith.Nat
	}

	Nonce = saferith.Nat
)

// PublicKeyOf returns y = gˣ (mod p).
func PublicKeyOf(group *Group, x *saferith.Nat) (*saferith.Nat, error) {
	if x == nil || !group.P.IsReduced(x) {
		return nil, ErrInvalidSecretKey
	}
	return group.P.Exp(group.G, x), nil
}

// NewSecretKey derives the key pair belonging to x.
func NewSecretKey(group *Group, x *saferith.Nat) (*SecretKey, error) {
	y, err := PublicKeyOf(group, x)
	if err != nil {
		return nil, err
	}
	return &SecretKey{
		PublicKey: PublicKey{Group: group, Y: y},
		X:         x,
	}, nil
}

// GenerateKey samples x uniformly from [0, p) and derives y = gˣ (mod p).
func GenerateKey(rand io.Reader, group *Group) (*SecretKey, error) {
	x, err := sample.ModP(rand, group.P)
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: sample secret key")
	}
	return NewSecretKey(group, x)
}

// SampleElement draws an element of Z*ₚ with at most bits bits. It is used for
// both plaintexts and nonces.
func SampleElement(rand io.Reader, group *Group, bits int) (*saferith.Nat, error) {
	v, err := sample.UnitModP(rand, group.P, bits)
	if err != nil {
		return nil, errors.WithMessage(err, "elgamal: sample group element")
	}
	return v, nil
}

// Encrypt returns the encryption of `message` under y as (C1=gʳ, C2=message⋅yʳ).
//
// r must be freshly sampled for every call: two ciphertexts under the same key
// and nonce reveal the ratio of their plaintexts. Use EncryptRandom unless the
// nonce has to be chosen by the caller.
func Encrypt(group *Group, y, message, r *saferith.Nat) (*Ciphertext, error) {
	p := group.P
	if message == nil || !p.IsReduced(message) || p.IsUnit(message) != 1 {
		return nil, ErrInvalidPlaintext
	}
	if r == nil || !p.IsReduced(r) || p.IsUnit(r) != 1 {
		return nil, ErrInvalidNonce
	}
	c1 := p.Exp(group.G, r)
	c2 := p.Mul(message, p.Exp(y, r))
	return &Ciphertext{C1: c1, C2: c2}, nil
}

// Decrypt returns C2⋅C1⁻ˣ (mod p). The nonce is not needed.
func Decrypt(group *Group, x *saferith.Nat, ct *Ciphertext) (*saferith.Nat, error) {
	if ct == nil || ct.C1 == nil || ct.C2 == nil {
		return nil, ErrInvalidCiphertext
	}
	if x == nil || !group.P.IsReduced(x) {
		return nil, ErrInvalidSecretKey
	}
	p := group.P
	c1 := p.Reduce(ct.C1)
	if c1.EqZero() == 1 || p.IsUnit(c1) != 1 {
		return nil, ErrInvalidCiphertext
	}
	negX := new(saferith.Int).SetNat(x).Neg(1)
	// s⁻¹ = C1⁻ˣ (mod p)
	sInv := p.ExpI(c1, negX)
	return p.Mul(ct.C2, sInv), nil
}

// Encrypt encrypts `message` under pk with nonce r. See Encrypt.
func (pk *PublicKey) Encrypt(message, r *saferith.Nat) (*Ciphertext, error) {
	return Encrypt(pk.Group, pk.Y, message, r)
}

// EncryptRandom samples a fresh nonce, encrypts `message` with it, and returns
// the ciphertext as well as the nonce.
func (pk *PublicKey) EncryptRandom(rand io.Reader, message *saferith.Nat) (*Ciphertext, *Nonce, error) {
	r, err := SampleElement(rand, pk.Group, pk.Group.BitLen())
	if err != nil {
		return nil, nil, err
	}
	ct, err := pk.Encrypt(message, r)
	if err != nil {
		return nil, nil, err
	}
	return ct, r, nil
}

// Decrypt recovers the plaintext of ct.
func (sk *SecretKey) Decrypt(ct *Ciphertext) (*saferith.Nat, error) {
	return Decrypt(sk.Group, sk.X, ct)
}
