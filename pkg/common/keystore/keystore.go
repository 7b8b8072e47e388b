package keystore

import "github.com/shona13/ElGamal/pkg/common/keyopts"

type Keystore interface {
	Import(ski string, key []byte, opts keyopts.Options) error
	Get(opts keyopts.Options) ([]byte, error)
	Delete(opts keyopts.Options) error
	KeyAccessor(ski string, opts keyopts.Options) KeyAccessor
}

// KeyAccessor binds a Keystore to a single key.
type KeyAccessor interface {
	Import(key []byte) error
	Get() ([]byte, error)
	Delete() error
}
