package elgamal

import (
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"github.com/shona13/ElGamal/core/elgamal"
	"github.com/shona13/ElGamal/core/hash"
	"github.com/shona13/ElGamal/core/math/arith"
	cs_elgamal "github.com/shona13/ElGamal/pkg/common/cryptosuite/elgamal"
)

type ElgamalKey struct {
	secretKey *saferith.Nat
	publicKey *elgamal.PublicKey
}

var _ cs_elgamal.ElgamalKey = ElgamalKey{}

// rawElgamalKey is the cbor layout of a key. Y and Secret are fixed-width
// big-endian integers of the size of P.
type rawElgamalKey struct {
	P      []byte
	G      []byte
	Y      []byte
	Secret []byte `cbor:",omitempty"`
}

func newElgamalKey(sk *elgamal.SecretKey) ElgamalKey {
	pk := sk.PublicKey
	return ElgamalKey{secretKey: sk.X, publicKey: &pk}
}

func fixedBytes(x *saferith.Nat, size int) []byte {
	return x.Big().FillBytes(make([]byte, size))
}

func (key ElgamalKey) Bytes() ([]byte, error) {
	if key.publicKey == nil {
		return nil, ErrInvalidKey
	}
	group := key.publicKey.Group
	size := (group.BitLen() + 7) / 8

	raw := &rawElgamalKey{
		P: group.P.Big().Bytes(),
		G: group.G.Big().Bytes(),
		Y: fixedBytes(key.publicKey.Y, size),
	}
	if key.Private() {
		raw.Secret = fixedBytes(key.secretKey, size)
	}
	return cbor.Marshal(raw)
}

// SKI returns the Subject Key Identifier: a blake3 digest of (p, g, y).
func (key ElgamalKey) SKI() []byte {
	if key.publicKey == nil {
		return nil
	}
	h := hash.New()
	if err := h.WriteAny(key.publicKey.Group.P.Modulus, key.publicKey.Group.G, key.publicKey.Y); err != nil {
		return nil
	}
	return h.Sum()
}

func (key ElgamalKey) Private() bool {
	return key.secretKey != nil
}

func (key ElgamalKey) PublicKey() cs_elgamal.ElgamalKey {
	return ElgamalKey{publicKey: key.publicKey}
}

func (key ElgamalKey) PublicKeyRaw() *elgamal.PublicKey {
	return key.publicKey
}

func (key ElgamalKey) Encrypt(rand io.Reader, message *saferith.Nat) (*elgamal.Ciphertext, *elgamal.Nonce, error) {
	if key.publicKey == nil {
		return nil, nil, ErrInvalidKey
	}
	return key.publicKey.EncryptRandom(rand, message)
}

func (key ElgamalKey) Decrypt(ct *elgamal.Ciphertext) (*saferith.Nat, error) {
	if !key.Private() {
		return nil, ErrPublicKey
	}
	return elgamal.Decrypt(key.publicKey.Group, key.secretKey, ct)
}

// fromBytes decodes a key. With validate set, the domain parameters are
// checked and y is verified against the secret, or checked to lie in Z*ₚ for
// public keys.
func fromBytes(data []byte, validate bool) (ElgamalKey, error) {
	raw := &rawElgamalKey{}
	if err := cbor.Unmarshal(data, raw); err != nil {
		return ElgamalKey{}, errors.WithMessage(ErrInvalidKey, err.Error())
	}
	if len(raw.P) == 0 || len(raw.G) == 0 || len(raw.Y) == 0 {
		return ElgamalKey{}, ErrInvalidKey
	}

	p := new(big.Int).SetBytes(raw.P)
	g := new(big.Int).SetBytes(raw.G)
	var group *elgamal.Group
	if validate {
		var err error
		if group, err = elgamal.NewGroup(p, g); err != nil {
			return ElgamalKey{}, err
		}
	} else {
		mod, err := arith.ModulusFromBig(p)
		if err != nil {
			return ElgamalKey{}, errors.WithMessage(ErrInvalidKey, err.Error())
		}
		group = &elgamal.Group{P: mod, G: new(saferith.Nat).SetBig(g, p.BitLen())}
	}

	y := new(saferith.Nat).SetBytes(raw.Y)
	key := ElgamalKey{publicKey: &elgamal.PublicKey{Group: group, Y: y}}

	if len(raw.Secret) > 0 {
		x := new(saferith.Nat).SetBytes(raw.Secret)
		if validate {
			sk, err := elgamal.NewSecretKey(group, x)
			if err != nil {
				return ElgamalKey{}, err
			}
			if sk.Y.Big().Cmp(y.Big()) != 0 {
				return ElgamalKey{}, errors.WithMessage(ErrInvalidKey, "public key does not match secret")
			}
		}
		key.secretKey = x
	} else if validate {
		if !group.P.IsReduced(y) || group.P.IsUnit(y) != 1 {
			return ElgamalKey{}, errors.WithMessage(ErrInvalidKey, "public key is not in Z*p")
		}
	}

	return key, nil
}
