package vault

import (
	"errors"
	"runtime"
	"sync"
)

var (
	ErrKeyNotFound = errors.New("vault: key not found")
)

// InMemoryVault keeps encoded keys in process memory. Nothing is persisted.
type InMemoryVault struct {
	lock sync.RWMutex
	keys map[string][]byte
}

func NewInMemoryVault() *InMemoryVault {
	return &InMemoryVault{
		keys: make(map[string][]byte),
	}
}

func (store *InMemoryVault) Import(ski string, key []byte) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	if old, ok := store.keys[ski]; ok {
		zeroize(old)
	}
	store.keys[ski] = append([]byte(nil), key...)
	return nil
}

func (store *InMemoryVault) Get(ski string) ([]byte, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()

	key, ok := store.keys[ski]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), key...), nil
}

func (store *InMemoryVault) Delete(ski string) error {
	store.lock.Lock()
	defer store.lock.Unlock()

	key, ok := store.keys[ski]
	if !ok {
		return ErrKeyNotFound
	}
	zeroize(key)
	delete(store.keys, ski)
	return nil
}

// zeroize overwrites buf; runtime.KeepAlive prevents the stores from being elided.
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
