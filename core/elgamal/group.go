package elgamal

import (
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/math/arith"
	"github.com/shona13/ElGamal/lib/params"
)

// Group holds the domain parameters: a prime modulus P and a generator G of a
// subgroup of Z*ₚ. A Group is immutable and may be shared between goroutines.
type Group struct {
	P *arith.Modulus
	G *saferith.Nat
}

// NewGroup validates p and g and returns the corresponding Group.
// p must be an odd prime and 1 < g < p.
func NewGroup(p, g *big.Int) (*Group, error) {
	if p == nil || g == nil {
		return nil, errors.WithMessage(ErrInvalidDomainParameters, "missing p or g")
	}
	if p.Bit(0) == 0 || !p.ProbablyPrime(params.PrimalityRounds) {
		return nil, errors.WithMessage(ErrInvalidDomainParameters, "p is not an odd prime")
	}
	if g.Cmp(big.NewInt(1)) <= 0 || g.Cmp(p) >= 0 {
		return nil, errors.WithMessage(ErrInvalidDomainParameters, "g is not in (1, p)")
	}
	mod, err := arith.ModulusFromBig(p)
	if err != nil {
		return nil, errors.WithMessage(ErrInvalidDomainParameters, err.Error())
	}
	return &Group{
		P: mod,
		G: new(saferith.Nat).SetBig(g, p.BitLen()),
	}, nil
}

// DefaultGroup returns the 3072-bit MODP group with generator 2.
func DefaultGroup() *Group {
	p, ok := new(big.Int).SetString(params.DefaultPrime, 10)
	if !ok {
		panic("elgamal: malformed default prime")
	}
	mod, err := arith.ModulusFromBig(p)
	if err != nil {
		panic(err)
	}
	return &Group{
		P: mod,
		G: new(saferith.Nat).SetUint64(params.DefaultGenerator),
	}
}

// BitLen returns the bit length of P.
func (g *Group) BitLen() int {
	return g.P.BitLen()
}

// Equal reports whether both groups have the same parameters.
func (g *Group) Equal(other *Group) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.P.Big().Cmp(other.P.Big()) == 0 && g.G.Big().Cmp(other.G.Big()) == 0
}
