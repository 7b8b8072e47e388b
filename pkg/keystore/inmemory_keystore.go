package keystore

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/pkg/common/keyopts"
	"github.com/shona13/ElGamal/pkg/common/keystore"
	"github.com/shona13/ElGamal/pkg/common/vault"
)

// InMemoryKeystore links key ids to vault entries. Several ids may share one
// entry; the entry is removed when the last id referring to it goes away.
type InMemoryKeystore struct {
	// guards the vault and the key metadata as a pair
	lock sync.Mutex
	v    vault.Vault
	kr   keyopts.KeyOpts
}

var _ keystore.Keystore = (*InMemoryKeystore)(nil)

func NewInMemoryKeystore(v vault.Vault, kr keyopts.KeyOpts) *InMemoryKeystore {
	return &InMemoryKeystore{
		v:  v,
		kr: kr,
	}
}

func (ks *InMemoryKeystore) Import(ski string, key []byte, opts keyopts.Options) error {
	ks.lock.Lock()
	defer ks.lock.Unlock()

	prev, _ := ks.kr.Get(opts)
	_, err := ks.v.Get(ski)
	existed := err == nil

	// store key to vault
	if err := ks.v.Import(ski, key); err != nil {
		return errors.WithMessage(err, "keystore: import key")
	}

	// import key metadata to key repository
	if err := ks.kr.Import(ski, opts); err != nil {
		if !existed {
			_ = ks.v.Delete(ski)
		}
		return errors.WithMessage(err, "keystore: import key metadata")
	}

	// the id was moved away from its previous entry
	if prev != nil && prev.SKI != ski {
		return ks.release(prev.SKI)
	}
	return nil
}

func (ks *InMemoryKeystore) Get(opts keyopts.Options) ([]byte, error) {
	ks.lock.Lock()
	defer ks.lock.Unlock()

	kd, err := ks.kr.Get(opts)
	if err != nil {
		return nil, err
	}
	return ks.v.Get(kd.SKI)
}

func (ks *InMemoryKeystore) Delete(opts keyopts.Options) error {
	ks.lock.Lock()
	defer ks.lock.Unlock()

	kd, err := ks.kr.Get(opts)
	if err != nil {
		return err
	}
	if err := ks.kr.Delete(opts); err != nil {
		return err
	}
	return ks.release(kd.SKI)
}

// release deletes the vault entry for ski once no key id refers to it.
func (ks *InMemoryKeystore) release(ski string) error {
	all, err := ks.kr.GetAll()
	if err != nil {
		return err
	}
	for _, kd := range all {
		if kd.SKI == ski {
			return nil
		}
	}
	return ks.v.Delete(ski)
}

func (ks *InMemoryKeystore) KeyAccessor(ski string, opts keyopts.Options) keystore.KeyAccessor {
	return &keyAccessor{ks: ks, ski: ski, opts: opts}
}

// keyAccessor pins a vault entry and a key id of one keystore.
type keyAccessor struct {
	ks   *InMemoryKeystore
	ski  string
	opts keyopts.Options
}

func (a *keyAccessor) Import(key []byte) error {
	return a.ks.Import(a.ski, key, a.opts)
}

func (a *keyAccessor) Get() ([]byte, error) {
	return a.ks.Get(a.opts)
}

func (a *keyAccessor) Delete() error {
	return a.ks.Delete(a.opts)
}
