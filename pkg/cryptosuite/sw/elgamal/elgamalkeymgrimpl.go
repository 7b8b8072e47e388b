package elgamal

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/hex"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/core/hash"
	"github.com/shona13/ElGamal/core/pool"
	cs_elgamal "github.com/shona13/ElGamal/pkg/common/cryptosuite/elgamal"
	"github.com/shona13/ElGamal/pkg/common/keyopts"
	"github.com/shona13/ElGamal/pkg/common/keystore"
	"github.com/shona13/ElGamal/pkg/logging"
)

type ElgamalKeyManager struct {
	keystore keystore.Keystore
	pool     *pool.Pool
	rand     io.Reader
	cfg      *Config
	log      logging.Logger
}

var _ cs_elgamal.ElgamalKeyManager = (*ElgamalKeyManager)(nil)

func NewElgamalKeyManager(store keystore.Keystore, pl *pool.Pool, cfg *Config) *ElgamalKeyManager {
	random := cfg.Rand
	if random == nil {
		random = cryptorand.Reader
	}
	log := cfg.Logger
	if log == nil {
		log = logging.New(nil)
	}
	if pl == nil {
		pl = pool.NewPool(0)
	}
	return &ElgamalKeyManager{
		keystore: store,
		pool:     pl,
		// every sampler of this manager reads through the same lock
		rand: pool.NewLockedReader(random),
		cfg:  cfg,
		log:  log.With("component", "elgamal"),
	}
}

func (mgr *ElgamalKeyManager) GenerateKey(opts keyopts.Options) (cs_elgamal.ElgamalKey, error) {
	// Generate a new ElGamal key pair
	sk, err := elgamal.GenerateKey(mgr.rand, mgr.cfg.Group)
	if err != nil {
		return nil, err
	}
	key := newElgamalKey(sk)

	if err := mgr.store(key, opts); err != nil {
		return nil, err
	}

	mgr.log.Debug(context.Background(), "generated key", "ski", hex.EncodeToString(key.SKI()), logging.Redacted("secret"))
	return key, nil
}

func (mgr *ElgamalKeyManager) ImportKey(data []byte, opts keyopts.Options) (cs_elgamal.ElgamalKey, error) {
	// decode and validate the key
	k, err := fromBytes(data, true)
	if err != nil {
		return nil, err
	}
	if !k.publicKey.Group.Equal(mgr.cfg.Group) {
		return nil, ErrGroup
	}

	if err := mgr.store(k, opts); err != nil {
		return nil, err
	}

	mgr.log.Debug(context.Background(), "imported key", "ski", hex.EncodeToString(k.SKI()), "private", k.Private())
	return k, nil
}

// store serializes key and links it to opts in the keystore.
func (mgr *ElgamalKeyManager) store(key ElgamalKey, opts keyopts.Options) error {
	encoded, err := key.Bytes()
	if err != nil {
		return err
	}
	return mgr.keystore.KeyAccessor(vaultID(key), opts).Import(encoded)
}

// vaultID names the vault entry of key. Both halves of a key pair share the
// SKI, so a public key gets an entry of its own.
func vaultID(key ElgamalKey) string {
	id := hex.EncodeToString(key.SKI())
	if !key.Private() {
		id += ".pub"
	}
	return id
}

func (mgr *ElgamalKeyManager) GetKey(opts keyopts.Options) (cs_elgamal.ElgamalKey, error) {
	return mgr.getKey(opts)
}

func (mgr *ElgamalKeyManager) getKey(opts keyopts.Options) (ElgamalKey, error) {
	// get the key from the keystore
	encoded, err := mgr.keystore.Get(opts)
	if err != nil {
		return ElgamalKey{}, err
	}

	// keys in the keystore were validated on the way in
	return fromBytes(encoded, false)
}

func (mgr *ElgamalKeyManager) DeleteKey(opts keyopts.Options) error {
	if err := mgr.keystore.Delete(opts); err != nil {
		return err
	}
	mgr.log.Debug(context.Background(), "deleted key")
	return nil
}

func (mgr *ElgamalKeyManager) SampleMessage() (*saferith.Nat, error) {
	return elgamal.SampleElement(mgr.rand, mgr.cfg.Group, mgr.cfg.Group.BitLen())
}

func (mgr *ElgamalKeyManager) Encrypt(message *saferith.Nat, opts keyopts.Options) (*elgamal.Ciphertext, *elgamal.Nonce, error) {
	k, err := mgr.getKey(opts)
	if err != nil {
		return nil, nil, err
	}
	ct, nonce, err := k.Encrypt(mgr.rand, message)
	if err != nil {
		return nil, nil, err
	}
	mgr.log.Debug(context.Background(), "encrypted message", "digest", digest(ct))
	return ct, nonce, nil
}

// EncryptBatch encrypts messages concurrently on the manager's pool. Each
// message gets its own nonce; the shared entropy source is read under a lock.
func (mgr *ElgamalKeyManager) EncryptBatch(messages []*saferith.Nat, opts keyopts.Options) ([]*elgamal.Ciphertext, error) {
	k, err := mgr.getKey(opts)
	if err != nil {
		return nil, err
	}

	results, err := mgr.pool.Parallelize(len(messages), func(i int) (interface{}, error) {
		ct, _, err := k.Encrypt(mgr.rand, messages[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "message %d", i)
		}
		return ct, nil
	})
	if err != nil {
		return nil, err
	}

	cts := make([]*elgamal.Ciphertext, len(results))
	for i, r := range results {
		cts[i] = r.(*elgamal.Ciphertext)
	}
	mgr.log.Debug(context.Background(), "encrypted batch", "count", len(cts), "workers", mgr.pool.Workers())
	return cts, nil
}

func (mgr *ElgamalKeyManager) Decrypt(ct *elgamal.Ciphertext, opts keyopts.Options) (*saferith.Nat, error) {
	k, err := mgr.getKey(opts)
	if err != nil {
		return nil, err
	}
	m, err := k.Decrypt(ct)
	if err != nil {
		mgr.log.Warn(context.Background(), "decryption failed", "error", err)
		return nil, err
	}
	return m, nil
}

func digest(ct *elgamal.Ciphertext) string {
	h := hash.New()
	if err := h.WriteAny(ct); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum()[:8])
}
