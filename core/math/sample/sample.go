package sample

import (
	cryptorand "crypto/rand"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/math/arith"
	"github.com/shona13/ElGamal/lib/params"
)

var (
	ErrInvalidBitLength  = errors.New("sample: invalid bit length")
	ErrSamplingExhausted = errors.New("sample: no valid candidate within the retry limit")
)

func reader(rand io.Reader) io.Reader {
	if rand == nil {
		return cryptorand.Reader
	}
	return rand
}

// Bits returns a uniformly random integer of bit length at most n.
func Bits(rand io.Reader, n int) (*saferith.Nat, error) {
	if n <= 0 {
		return nil, ErrInvalidBitLength
	}
	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(reader(rand), buf); err != nil {
		return nil, errors.WithMessage(err, "sample: failed to read random bytes")
	}
	// clear the bits above n in the most significant byte
	if excess := len(buf)*8 - n; excess > 0 {
		buf[0] &= 0xff >> excess
	}
	return new(saferith.Nat).SetBytes(buf), nil
}

// Candidates is a finite sequence of random integers of a fixed bit length.
// It yields at most limit values.
type Candidates struct {
	rand io.Reader
	bits int
	left int
}

// NewCandidates returns a sequence of at most limit candidates of the given bit length.
func NewCandidates(rand io.Reader, bits, limit int) *Candidates {
	return &Candidates{rand: reader(rand), bits: bits, left: limit}
}

// Next draws the next candidate. ok is false once the sequence is exhausted.
func (c *Candidates) Next() (v *saferith.Nat, ok bool, err error) {
	if c.left <= 0 {
		return nil, false, nil
	}
	c.left--
	v, err = Bits(c.rand, c.bits)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// First returns the first candidate satisfying accept, or ErrSamplingExhausted.
func (c *Candidates) First(accept func(*saferith.Nat) bool) (*saferith.Nat, error) {
	for {
		v, ok, err := c.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrSamplingExhausted
		}
		if accept(v) {
			return v, nil
		}
	}
}

func checkBits(p *arith.Modulus, bits int) error {
	if bits <= 0 || bits > p.BitLen() {
		return ErrInvalidBitLength
	}
	return nil
}

// UnitModP samples an element of Z*ₚ: a value v < p of at most bits bits
// with gcd(v, p) = 1.
func UnitModP(rand io.Reader, p *arith.Modulus, bits int) (*saferith.Nat, error) {
	if err := checkBits(p, bits); err != nil {
		return nil, err
	}
	return NewCandidates(rand, bits, params.MaxSampleIterations).First(func(v *saferith.Nat) bool {
		return p.IsReduced(v) && p.IsUnit(v) == 1
	})
}

// ModP samples a uniform value in [0, p).
func ModP(rand io.Reader, p *arith.Modulus) (*saferith.Nat, error) {
	return NewCandidates(rand, p.BitLen(), params.MaxSampleIterations).First(p.IsReduced)
}
