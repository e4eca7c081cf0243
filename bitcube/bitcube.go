// Package bitcube implements a dense 3D bit array (spec.md §4.10), a
// standalone utility; no other package of this module imports it.
package bitcube

import (
	"errors"
	"math/bits"
)

// ErrOutOfRange is returned by Get/Set/Flip/Clear when a coordinate falls
// outside [0,X)×[0,Y)×[0,Z) — signalled distinctly from a logic error,
// per spec.md §7, since BitCube is a public utility that validates its
// own inputs.
var ErrOutOfRange = errors.New("bitcube: coordinate out of range")

const wordBits = 64

// BitCube is a dense X×Y×Z bit array with linear index x*Y*Z + y*Z + z,
// packed into 64-bit words (lowest index = word 0, bit 0; little-endian
// bit order within each word).
type BitCube struct {
	x, y, z int
	data    []uint64
}

// New returns a cleared BitCube of the given dimensions.
func New(x, y, z int) *BitCube {
	n := x * y * z
	words := (n + wordBits - 1) / wordBits

	return &BitCube{x: x, y: y, z: z, data: make([]uint64, words)}
}

// FromRaw reconstructs a BitCube from its serialized (x, y, z, data) form,
// as produced by RawData — spec.md §6's BitCube round-trip contract.
func FromRaw(x, y, z int, data []uint64) *BitCube {
	words := (x*y*z + wordBits - 1) / wordBits
	out := make([]uint64, words)
	copy(out, data)

	return &BitCube{x: x, y: y, z: z, data: out}
}

// RawData returns the packed 64-bit words backing this cube, in the wire
// order described by FromRaw.
func (c *BitCube) RawData() []uint64 {
	out := make([]uint64, len(c.data))
	copy(out, c.data)

	return out
}

// Dims returns the cube's (x, y, z) dimensions.
func (c *BitCube) Dims() (int, int, int) { return c.x, c.y, c.z }

func (c *BitCube) index(x, y, z int) (int, error) {
	if x < 0 || x >= c.x || y < 0 || y >= c.y || z < 0 || z >= c.z {
		return 0, ErrOutOfRange
	}

	return x*c.y*c.z + y*c.z + z, nil
}

// Get reports whether the bit at (x,y,z) is set.
func (c *BitCube) Get(x, y, z int) (bool, error) {
	idx, err := c.index(x, y, z)
	if err != nil {
		return false, err
	}
	word, bit := idx/wordBits, uint(idx%wordBits)

	return c.data[word]&(1<<bit) != 0, nil
}

// Set sets the bit at (x,y,z).
func (c *BitCube) Set(x, y, z int) error {
	idx, err := c.index(x, y, z)
	if err != nil {
		return err
	}
	word, bit := idx/wordBits, uint(idx%wordBits)
	c.data[word] |= 1 << bit

	return nil
}

// Clear clears the bit at (x,y,z).
func (c *BitCube) Clear(x, y, z int) error {
	idx, err := c.index(x, y, z)
	if err != nil {
		return err
	}
	word, bit := idx/wordBits, uint(idx%wordBits)
	c.data[word] &^= 1 << bit

	return nil
}

// Flip toggles the bit at (x,y,z).
func (c *BitCube) Flip(x, y, z int) error {
	idx, err := c.index(x, y, z)
	if err != nil {
		return err
	}
	word, bit := idx/wordBits, uint(idx%wordBits)
	c.data[word] ^= 1 << bit

	return nil
}

// PopCount returns the total number of set bits.
func (c *BitCube) PopCount() int {
	total := 0
	for _, w := range c.data {
		total += bits.OnesCount64(w)
	}

	return total
}

// GetZLine returns every bit along the Z axis at fixed (x,y), ascending z.
func (c *BitCube) GetZLine(x, y int) ([]bool, error) {
	out := make([]bool, c.z)
	for k := 0; k < c.z; k++ {
		v, err := c.Get(x, y, k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}

// Equal reports whether c and o have identical dimensions and bits.
func (c *BitCube) Equal(o *BitCube) bool {
	if c.x != o.x || c.y != o.y || c.z != o.z || len(c.data) != len(o.data) {
		return false
	}
	for i := range c.data {
		if c.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
