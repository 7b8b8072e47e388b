package keyopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportKeys(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	keys := map[string]string{
		"1": "ski-1",
		"2": "ski-2",
	}
	for id, ski := range keys {
		opts, err := NewOptions().Set("id", id)
		require.NoError(t, err)
		assert.NoError(t, kr.Import(ski, opts), "Import should not return an error")
	}

	ks, err := kr.GetAll()
	assert.NoError(t, err, "GetAll should not return an error")
	assert.Len(t, ks, len(keys))

	opts, err := NewOptions().Set("id", "1")
	require.NoError(t, err)
	kd, err := kr.Get(opts)
	require.NoError(t, err)
	assert.Equal(t, "ski-1", kd.SKI)
	assert.Equal(t, "1", kd.ID)

	require.NoError(t, kr.Delete(opts))
	_, err = kr.Get(opts)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, kr.Delete(opts), ErrKeyNotFound)
}

func TestInvalidOptions(t *testing.T) {
	kr := NewInMemoryKeyOpts()

	_, err := NewOptions().Set("id")
	assert.ErrorIs(t, err, ErrInvalidOptions)
	_, err = NewOptions().Set(1, "id")
	assert.ErrorIs(t, err, ErrInvalidOptions)

	opts, err := NewOptions().Set("id", 123)
	require.NoError(t, err)
	assert.ErrorIs(t, kr.Import("ski", opts), ErrInvalidParamsKeyID)
	assert.ErrorIs(t, kr.Import("ski", NewOptions()), ErrInvalidParamsKeyID)
	assert.ErrorIs(t, kr.Import("ski", nil), ErrInvalidParamsKeyID)
}
