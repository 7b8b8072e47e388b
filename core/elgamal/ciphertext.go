package elgamal

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/cronokirby/saferith"
)

// maxComponentLen bounds the encoded size of a single ciphertext component.
const maxComponentLen = 1 << 16

type Ciphertext struct {
	// C1 = gʳ (mod p)
	C1 *saferith.Nat
	// C2 = m⋅yʳ (mod p)
	C2 *saferith.Nat
}

// Valid returns true if both components are reduced mod p and C1 is invertible.
func (c *Ciphertext) Valid(group *Group) bool {
	if c == nil || c.C1 == nil || c.C2 == nil || group == nil {
		return false
	}
	if !group.P.IsReduced(c.C1) || !group.P.IsReduced(c.C2) {
		return false
	}
	return group.P.IsUnit(c.C1) == 1
}

// MarshalBinary encodes the ciphertext as two length-prefixed big-endian integers:
// | len(C1) uint32 | C1 | len(C2) uint32 | C2 |
func (c *Ciphertext) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return io.ErrShortBuffer
	}
	r := bytes.NewReader(data)
	c1, err := readComponent(r)
	if err != nil {
		return err
	}
	c2, err := readComponent(r)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return ErrInvalidCiphertext
	}
	c.C1, c.C2 = c1, c2
	return nil
}

func (c *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	if c == nil || c.C1 == nil || c.C2 == nil {
		return 0, ErrInvalidCiphertext
	}
	var total int64
	for _, x := range []*saferith.Nat{c.C1, c.C2} {
		n, err := writeComponent(w, x)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (Ciphertext) Domain() string {
	return "ElGamal Ciphertext"
}

func writeComponent(w io.Writer, x *saferith.Nat) (int64, error) {
	raw := x.Big().Bytes()
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(raw)))
	n, err := w.Write(size[:])
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(raw)
	return int64(n + m), err
}

func readComponent(r io.Reader) (*saferith.Nat, error) {
	var size [4]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	l := binary.BigEndian.Uint32(size[:])
	if l > maxComponentLen {
		return nil, ErrInvalidCiphertext
	}
	raw := make([]byte, l)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, io.ErrUnexpectedEOF
	}
	return new(saferith.Nat).SetBytes(raw), nil
}
