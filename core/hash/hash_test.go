package hash

import (
	"io"
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_WriteAny(t *testing.T) {
	var err error

	testFunc := func(vs ...interface{}) error {
		h := New()
		for _, v := range vs {
			err = h.WriteAny(v)
			if err != nil {
				return err
			}
		}
		return nil
	}
	b := big.NewInt(35)
	n := new(saferith.Nat).SetBig(b, b.BitLen())
	m := saferith.ModulusFromBytes(b.Bytes())

	assert.NoError(t, testFunc(n, m))
	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.Error(t, testFunc(42))
	assert.Error(t, testFunc([]byte(nil)))
}

func TestHash_WriteAny_Collision(t *testing.T) {
	testFunc := func(vs ...interface{}) []byte {
		h := New()
		require.NoError(t, h.WriteAny(vs...))
		return h.Sum()
	}

	h1 := testFunc([]byte("1)(saferith.Nat\x02*data_added*"), []byte("3"))
	h2 := testFunc([]byte("1"), []byte("*data_added*)(saferith.Nat\x023"))
	assert.NotEqual(t, h1, h2)
}

func TestHash_NatSizeIndependent(t *testing.T) {
	small := new(saferith.Nat).SetUint64(8)
	wide := new(saferith.Nat).SetUint64(8).Resize(3072)

	h1 := New()
	require.NoError(t, h1.WriteAny(small))
	h2 := New()
	require.NoError(t, h2.WriteAny(wide))
	assert.Equal(t, h1.Sum(), h2.Sum())
}

func TestHash_Clone(t *testing.T) {
	h := New()

	h1 := h.Clone()
	h2 := h.Clone()

	require.NoError(t, h1.WriteAny([]byte("123")))
	require.NoError(t, h2.WriteAny([]byte("123")))
	assert.Equal(t, h1.Sum(), h2.Sum())

	require.NoError(t, h.WriteAny([]byte("123456")))
	assert.NotEqual(t, h.Sum(), h1.Sum())

	f := h1.Fork([]byte("456"))
	assert.NotEqual(t, f.Sum(), h1.Sum())
}

func TestHash_Digest(t *testing.T) {
	h := New()
	require.NoError(t, h.WriteAny([]byte("seed")))

	a := make([]byte, 96)
	b := make([]byte, 96)
	_, err := io.ReadFull(h.Digest(), a)
	require.NoError(t, err)
	_, err = io.ReadFull(h.Clone().Digest(), b)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, h.Sum(), DigestLengthBytes)
}
