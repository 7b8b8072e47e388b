package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryVault(t *testing.T) {
	v := NewInMemoryVault()

	key := []byte{1, 2, 3}
	require.NoError(t, v.Import("ski", key))

	// the vault keeps its own copy
	key[0] = 9
	got, err := v.Get("ski")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	got[1] = 9
	again, err := v.Get("ski")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)

	require.NoError(t, v.Delete("ski"))
	_, err = v.Get("ski")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, v.Delete("ski"), ErrKeyNotFound)
}
