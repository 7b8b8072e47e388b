package keyopts

import (
	"errors"
	"sync"

	"github.com/shona13/ElGamal/pkg/common/keyopts"
)

var (
	ErrInvalidParamsKeyID = errors.New("keyopts: invalid keyID")
	ErrKeyNotFound        = errors.New("keyopts: key not found")
)

type KeyOpts struct {
	lock sync.RWMutex

	// keys is a map of KeyID to key metadata{SKI}.
	keys map[string]*keyopts.KeyData
}

func NewInMemoryKeyOpts() *KeyOpts {
	return &KeyOpts{
		keys: make(map[string]*keyopts.KeyData),
	}
}

func keyID(opts keyopts.Options) (string, error) {
	if opts == nil {
		return "", ErrInvalidParamsKeyID
	}
	ID, ok := opts.Get("id")
	if !ok {
		return "", ErrInvalidParamsKeyID
	}
	kid, ok := ID.(string)
	if !ok || kid == "" {
		return "", ErrInvalidParamsKeyID
	}
	return kid, nil
}

func (kr *KeyOpts) Import(ski string, opts keyopts.Options) error {
	kid, err := keyID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	kr.keys[kid] = &keyopts.KeyData{ID: kid, SKI: ski}
	return nil
}

func (kr *KeyOpts) Get(opts keyopts.Options) (*keyopts.KeyData, error) {
	kid, err := keyID(opts)
	if err != nil {
		return nil, err
	}

	kr.lock.RLock()
	defer kr.lock.RUnlock()

	k, ok := kr.keys[kid]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return k, nil
}

func (kr *KeyOpts) GetAll() (map[string]*keyopts.KeyData, error) {
	kr.lock.RLock()
	defer kr.lock.RUnlock()

	result := make(map[string]*keyopts.KeyData, len(kr.keys))
	for kid, key := range kr.keys {
		result[kid] = key
	}
	return result, nil
}

func (kr *KeyOpts) Delete(opts keyopts.Options) error {
	kid, err := keyID(opts)
	if err != nil {
		return err
	}

	kr.lock.Lock()
	defer kr.lock.Unlock()

	if _, ok := kr.keys[kid]; !ok {
		return ErrKeyNotFound
	}
	delete(kr.keys, kid)
	return nil
}
