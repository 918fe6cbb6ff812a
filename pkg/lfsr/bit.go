package lfsr

import "strings"

// Bit is a single output bit of the register.
type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// String returns "1" or "0".
func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}

// Bits is an ordered sequence of output bits, oldest first.
type Bits []Bit

// String concatenates the bits in generation order.
func (bs Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		sb.WriteString(b.String())
	}
	return sb.String()
}

// Bytes packs the sequence LSB-first into bytes, matching the layout
// produced by NextByte. A trailing partial byte is zero-padded.
func (bs Bits) Bytes() []byte {
	out := make([]byte, (len(bs)+7)/8)
	for i, b := range bs {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}
