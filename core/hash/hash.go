package hash

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/cronokirby/saferith"
	"github.com/zeebo/blake3"
)

// DigestLengthBytes is the length of Sum's output.
const DigestLengthBytes = 32

// WriterToWithDomain is a type that can be written to a hash under its own domain.
type WriterToWithDomain interface {
	io.WriterTo

	// Domain returns a context string, which should be unique for each
	// implementor of this interface.
	Domain() string
}

// BytesWithDomain is a piece of data tagged with the domain it belongs to.
type BytesWithDomain struct {
	TheDomain string
	Bytes     []byte
}

// Hash is the hash function we use for key identifiers and ciphertext digests.
//
// Internally, this is a wrapper around blake3, whose extendable output can also
// be consumed as a deterministic stream through Digest.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash struct where the internal hash function is initialized with "ELGAMAL-BLAKE".
func New(initialData ...WriterToWithDomain) *Hash {
	hash := &Hash{h: blake3.New()}
	_, _ = hash.h.WriteString("ELGAMAL-BLAKE")
	for _, d := range initialData {
		_ = hash.WriteAny(d)
	}
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// Sum returns a slice of length DigestLengthBytes resulting from the current hash state.
func (hash *Hash) Sum() []byte {
	out := make([]byte, DigestLengthBytes)
	if _, err := io.ReadFull(hash.Digest(), out); err != nil {
		panic(fmt.Sprintf("hash.Sum: internal hash failure: %v", err))
	}
	return out
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - *saferith.Nat
//   - *saferith.Modulus
//   - hash.WriterToWithDomain
//   - encoding.BinaryMarshaler
//
// Integers are written in their minimal big-endian form, so the result does not
// depend on the announced size of a saferith value.
func (hash *Hash) WriteAny(data ...interface{}) error {
	var toBeWritten BytesWithDomain
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			if t == nil {
				return errors.New("hash.WriteAny: nil []byte")
			}
			toBeWritten = BytesWithDomain{"[]byte", t}
		case *saferith.Nat:
			if t == nil {
				return errors.New("hash.WriteAny: write *saferith.Nat: nil")
			}
			toBeWritten = BytesWithDomain{"saferith.Nat", t.Big().Bytes()}
		case *saferith.Modulus:
			if t == nil {
				return errors.New("hash.WriteAny: write *saferith.Modulus: nil")
			}
			toBeWritten = BytesWithDomain{"saferith.Modulus", t.Big().Bytes()}
		case WriterToWithDomain:
			var buf = new(bytes.Buffer)
			_, err := t.WriteTo(buf)
			if err != nil {
				name := reflect.TypeOf(t)
				return fmt.Errorf("hash.WriteAny: %s: %w", name.String(), err)
			}
			toBeWritten = BytesWithDomain{t.Domain(), buf.Bytes()}
		case encoding.BinaryMarshaler:
			name := reflect.TypeOf(t)
			bytes, err := t.MarshalBinary()
			if err != nil {
				return fmt.Errorf("hash.WriteAny: %s: %w", name.String(), err)
			}
			toBeWritten = BytesWithDomain{
				TheDomain: name.String(),
				Bytes:     bytes,
			}
		default:
			return fmt.Errorf("hash.WriteAny: invalid type %T provided as input", d)
		}

		hash.writeBytesWithDomain(toBeWritten)
	}
	return nil
}

func (hash *Hash) writeBytesWithDomain(toBeWritten BytesWithDomain) {
	var sizeBuf [8]byte

	// Write out `(<domain_size><domain><data_size><data>)`, so that each domain separated piece of data
	// is distinguished from others.

	_, _ = hash.h.WriteString("(")
	// <domain_size>
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(toBeWritten.TheDomain)))
	_, _ = hash.h.Write(sizeBuf[:])
	// <domain>
	_, _ = hash.h.WriteString(toBeWritten.TheDomain)
	// <data_size>
	binary.BigEndian.PutUint64(sizeBuf[:], uint64(len(toBeWritten.Bytes)))
	_, _ = hash.h.Write(sizeBuf[:])
	// <data>
	_, _ = hash.h.Write(toBeWritten.Bytes)
	// )
	_, _ = hash.h.WriteString(")")
}

// Clone returns a copy of the Hash in its current state.
func (hash *Hash) Clone() *Hash {
	return &Hash{h: hash.h.Clone()}
}

// Fork clones this hash, and then writes some data.
func (hash *Hash) Fork(data ...interface{}) *Hash {
	newHash := hash.Clone()
	_ = newHash.WriteAny(data...)
	return newHash
}
