package bitmap

import "fmt"

// BitVec is a fixed-length sequence of bits packed 8 per byte.
//
// Bit i is stored in byte i/8, most significant bit first, which matches the
// left-to-right pixel order of the display.
type BitVec struct {
	bits int
	data []byte
}

// NewBitVec returns a zeroed BitVec holding n bits.
func NewBitVec(n int) *BitVec {
	if n < 0 {
		panic(fmt.Sprintf("bitmap: invalid bit count %d", n))
	}
	return &BitVec{
		bits: n,
		data: make([]byte, (n+7)/8),
	}
}

// LoadBitVec wraps data without copying. The returned BitVec owns data and
// is 8*len(data) bits long.
func LoadBitVec(data []byte) *BitVec {
	return &BitVec{
		bits: len(data) * 8,
		data: data,
	}
}

// Len returns the number of bits.
func (v *BitVec) Len() int {
	return v.bits
}

// Get returns the bit at index i.
func (v *BitVec) Get(i int) bool {
	offset, mask := v.bitOffset(i)
	return v.data[offset]&mask != 0
}

// Set sets the bit at index i and returns its previous value.
func (v *BitVec) Set(i int, value bool) bool {
	offset, mask := v.bitOffset(i)
	old := v.data[offset]&mask != 0
	if value {
		v.data[offset] |= mask
	} else {
		v.data[offset] &^= mask
	}
	return old
}

// Fill sets every bit to value. Whole bytes are written, so padding bits past
// Len are affected too.
func (v *BitVec) Fill(value bool) {
	b := byte(0x00)
	if value {
		b = 0xFF
	}
	for i := range v.data {
		v.data[i] = b
	}
}

// Data returns the backing bytes. Writes through the slice change the BitVec.
func (v *BitVec) Data() []byte {
	return v.data
}

// Clone returns a deep copy.
func (v *BitVec) Clone() *BitVec {
	data := make([]byte, len(v.data))
	copy(data, v.data)
	return &BitVec{bits: v.bits, data: data}
}

// Bytes releases the backing storage to the caller. The BitVec must not be
// used afterwards.
func (v *BitVec) Bytes() []byte {
	data := v.data
	v.data = nil
	v.bits = 0
	return data
}

// bitOffset returns the byte offset and mask for bit i.
func (v *BitVec) bitOffset(i int) (offset int, mask byte) {
	if i < 0 || i >= v.bits {
		panic(fmt.Sprintf("bitmap: bit index %d out of range 0..%d", i, v.bits))
	}
	return i / 8, 0x80 >> uint(i%8)
}
