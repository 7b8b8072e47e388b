package arith

import (
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nat(v uint64) *saferith.Nat {
	return new(saferith.Nat).SetUint64(v)
}

func TestModulusOps(t *testing.T) {
	p, err := ModulusFromBig(big.NewInt(23))
	require.NoError(t, err)

	assert.Equal(t, "8", p.Exp(nat(5), nat(6)).Big().String())
	assert.Equal(t, "1", p.Exp(nat(5), nat(0)).Big().String())
	assert.Equal(t, "14", p.Mul(nat(10), nat(6)).Big().String())
	assert.Equal(t, "2", p.Reduce(nat(48)).Big().String())

	inv, err := p.Inverse(nat(6))
	require.NoError(t, err)
	assert.Equal(t, "4", inv.Big().String())

	_, err = p.Inverse(nat(46))
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestModulusExpI(t *testing.T) {
	p, err := ModulusFromBig(big.NewInt(23))
	require.NoError(t, err)

	// 10⁻⁶ = (10⁶)⁻¹ = 6⁻¹ = 4 (mod 23)
	e := new(saferith.Int).SetNat(nat(6)).Neg(1)
	assert.Equal(t, "4", p.ExpI(nat(10), e).Big().String())

	e = new(saferith.Int).SetNat(nat(6))
	assert.Equal(t, "6", p.ExpI(nat(10), e).Big().String())

	// a negative zero exponent still yields 1
	e = new(saferith.Int).SetNat(nat(0)).Neg(1)
	assert.Equal(t, "1", p.ExpI(nat(10), e).Big().String())
}

func TestModulusPredicates(t *testing.T) {
	p, err := ModulusFromBig(big.NewInt(23))
	require.NoError(t, err)

	assert.True(t, p.IsReduced(nat(22)))
	assert.False(t, p.IsReduced(nat(23)))
	assert.Equal(t, saferith.Choice(1), p.IsUnit(nat(5)))
	assert.Equal(t, saferith.Choice(0), p.IsUnit(nat(0)))
	assert.Equal(t, saferith.Choice(0), p.IsUnit(nat(69)))
}

func TestModulusConstruction(t *testing.T) {
	_, err := ModulusFromBig(big.NewInt(0))
	assert.ErrorIs(t, err, ErrZeroModulus)
	_, err = ModulusFromBig(nil)
	assert.ErrorIs(t, err, ErrZeroModulus)
	_, err = ModulusFromNat(nat(0))
	assert.ErrorIs(t, err, ErrZeroModulus)

	p, err := ModulusFromNat(nat(23))
	require.NoError(t, err)
	data, err := p.MarshalBinary()
	require.NoError(t, err)

	q := &Modulus{}
	require.NoError(t, q.UnmarshalBinary(data))
	assert.Equal(t, 0, p.Big().Cmp(q.Big()))
	assert.Error(t, q.UnmarshalBinary(nil))
}
