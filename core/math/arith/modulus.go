package arith

import (
	"errors"
	"math/big"

	"github.com/cronokirby/saferith"
)

var (
	ErrNotInvertible = errors.New("arith: element is not invertible")
	ErrZeroModulus   = errors.New("arith: zero modulus")
)

// Modulus wraps a saferith.Modulus for a prime p and exposes the operations
// the multiplicative group Z*ₚ needs.
type Modulus struct {
	// represents modulus p
	*saferith.Modulus
}

// ModulusFromNat creates a Modulus from p. The value is not copied.
func ModulusFromNat(p *saferith.Nat) (*Modulus, error) {
	if p == nil || p.EqZero() == 1 {
		return nil, ErrZeroModulus
	}
	return &Modulus{Modulus: saferith.ModulusFromNat(p)}, nil
}

// ModulusFromBig creates a Modulus from a math/big representation of p.
func ModulusFromBig(p *big.Int) (*Modulus, error) {
	if p == nil || p.Sign() <= 0 {
		return nil, ErrZeroModulus
	}
	return ModulusFromNat(new(saferith.Nat).SetBig(p, p.BitLen()))
}

// Reduce returns x (mod p).
func (p *Modulus) Reduce(x *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Mod(x, p.Modulus)
}

// Mul returns x⋅y (mod p).
func (p *Modulus) Mul(x, y *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).ModMul(p.Reduce(x), p.Reduce(y), p.Modulus)
}

// Exp is equivalent to (saferith.Nat).Exp(x, e, p.Modulus).
// It returns xᵉ (mod p).
func (p *Modulus) Exp(x, e *saferith.Nat) *saferith.Nat {
	return new(saferith.Nat).Exp(p.Reduce(x), e, p.Modulus)
}

// ExpI is equivalent to (saferith.Nat).ExpI(x, e, p.Modulus).
// It returns xᵉ (mod p); a negative e yields the inverse of x^|e|.
// The result is only meaningful when x is a unit mod p.
func (p *Modulus) ExpI(x *saferith.Nat, e *saferith.Int) *saferith.Nat {
	return new(saferith.Nat).ExpI(p.Reduce(x), e, p.Modulus)
}

// Inverse returns x⁻¹ (mod p).
func (p *Modulus) Inverse(x *saferith.Nat) (*saferith.Nat, error) {
	if p.IsUnit(x) != 1 {
		return nil, ErrNotInvertible
	}
	return new(saferith.Nat).ModInverse(p.Reduce(x), p.Modulus), nil
}

// IsUnit returns 1 if gcd(x, p) = 1.
func (p *Modulus) IsUnit(x *saferith.Nat) saferith.Choice {
	return x.IsUnit(p.Modulus)
}

// IsReduced returns true if 0 ≤ x < p.
func (p *Modulus) IsReduced(x *saferith.Nat) bool {
	_, _, lt := x.CmpMod(p.Modulus)
	return lt == 1
}

// Nat returns a copy of p as a saferith.Nat.
func (p *Modulus) Nat() *saferith.Nat {
	return p.Modulus.Nat()
}

func (p *Modulus) MarshalBinary() ([]byte, error) {
	return p.Modulus.Bytes(), nil
}

func (p *Modulus) UnmarshalBinary(data []byte) error {
	if new(big.Int).SetBytes(data).Sign() == 0 {
		return ErrZeroModulus
	}
	p.Modulus = saferith.ModulusFromBytes(data)
	return nil
}
