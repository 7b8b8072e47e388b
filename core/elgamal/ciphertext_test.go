package elgamal

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCiphertextEncoding(t *testing.T) {
	group := smallGroup(t)
	ct, err := Encrypt(group, nat(8), nat(10), nat(3))
	require.NoError(t, err)

	data, err := ct.MarshalBinary()
	require.NoError(t, err)
	// | 0 0 0 1 | 10 | 0 0 0 1 | 14 |
	assert.Equal(t, []byte{0, 0, 0, 1, 10, 0, 0, 0, 1, 14}, data)

	var buf bytes.Buffer
	n, err := ct.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)
	assert.Equal(t, data, buf.Bytes())

	decoded := &Ciphertext{}
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.True(t, decoded.Valid(group))

	m, err := Decrypt(group, nat(6), decoded)
	require.NoError(t, err)
	assert.Equal(t, "10", m.Big().String())
}

func TestCiphertextDecodingErrors(t *testing.T) {
	c := &Ciphertext{}
	assert.ErrorIs(t, c.UnmarshalBinary(nil), io.ErrShortBuffer)
	assert.ErrorIs(t, c.UnmarshalBinary([]byte{0, 0, 0, 2, 10}), io.ErrUnexpectedEOF)
	assert.ErrorIs(t, c.UnmarshalBinary([]byte{0, 0, 0, 1, 10}), io.ErrUnexpectedEOF)
	assert.ErrorIs(t, c.UnmarshalBinary([]byte{0, 0, 0, 1, 10, 0, 0, 0, 1, 14, 7}), ErrInvalidCiphertext)
	assert.ErrorIs(t, c.UnmarshalBinary([]byte{0xff, 0, 0, 0}), ErrInvalidCiphertext)
	assert.Nil(t, c.C1)

	_, err := (&Ciphertext{}).MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestCiphertextValid(t *testing.T) {
	group := smallGroup(t)

	assert.False(t, (*Ciphertext)(nil).Valid(group))
	assert.False(t, (&Ciphertext{C1: nat(0), C2: nat(3)}).Valid(group))
	assert.False(t, (&Ciphertext{C1: nat(30), C2: nat(3)}).Valid(group))
	assert.False(t, (&Ciphertext{C1: nat(3), C2: nat(23)}).Valid(group))
	assert.True(t, (&Ciphertext{C1: nat(3), C2: nat(0)}).Valid(group))
}
