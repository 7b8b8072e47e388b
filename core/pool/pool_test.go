package pool

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelize(t *testing.T) {
	pl := NewPool(4)
	assert.Equal(t, 4, pl.Workers())

	results, err := pl.Parallelize(100, func(i int) (interface{}, error) {
		return i * i, nil
	})
	require.NoError(t, err)
	require.Len(t, results, 100)
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}

	results, err = pl.Parallelize(0, func(i int) (interface{}, error) {
		return nil, errors.New("never called")
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestParallelizeError(t *testing.T) {
	pl := NewPool(0)
	assert.Positive(t, pl.Workers())

	boom := errors.New("boom")
	_, err := pl.Parallelize(50, func(i int) (interface{}, error) {
		if i == 7 {
			return nil, boom
		}
		return i, nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestLockedReaderConcurrent(t *testing.T) {
	const (
		readers = 8
		chunk   = 32
	)
	src := make([]byte, readers*chunk)
	_, err := io.ReadFull(rand.Reader, src)
	require.NoError(t, err)

	lr := NewLockedReader(bytes.NewReader(src))
	out := make([][]byte, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf := make([]byte, chunk)
			_, err := lr.Read(buf)
			assert.NoError(t, err)
			out[i] = buf
		}(i)
	}
	wg.Wait()

	// every chunk is a distinct, whole slice of the source
	seen := make(map[string]bool)
	for _, b := range out {
		assert.True(t, bytes.Contains(src, b))
		seen[string(b)] = true
	}
	assert.Len(t, seen, readers)
}
