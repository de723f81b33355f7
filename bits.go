package huffman

import (
	"fmt"
	"strconv"
)

// Bits represents a sequence of bits, one per element, first bit first.  A
// well-formed Bits holds only the values 0 and 1; the Decoder rejects any
// other value with ErrInvalidBit.
type Bits []byte

// ParseBits converts a string of '0' and '1' characters into Bits.  Any other
// character is reported as ErrInvalidBit.
func ParseBits(s string) (Bits, error) {
	out := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("offset %d: character %q: %w", i, s[i], ErrInvalidBit)
		}
	}
	return out, nil
}

// String renders these Bits as '0' and '1' characters.  Values other than 0
// and 1 are rendered as '?'.
func (bits Bits) String() string {
	buf := make([]byte, len(bits))
	for i, bit := range bits {
		switch bit {
		case 0:
			buf[i] = '0'
		case 1:
			buf[i] = '1'
		default:
			buf[i] = '?'
		}
	}
	return string(buf)
}

// GoString returns a quoted form of these Bits, with "" for the empty
// sequence.
func (bits Bits) GoString() string {
	return strconv.Quote(bits.String())
}

// HasPrefix reports whether prefix is a prefix of these Bits.
func (bits Bits) HasPrefix(prefix Bits) bool {
	if len(prefix) > len(bits) {
		return false
	}
	for i, bit := range prefix {
		if bits[i] != bit {
			return false
		}
	}
	return true
}

// Equal reports whether both sequences hold the same bits.
func (bits Bits) Equal(other Bits) bool {
	return len(bits) == len(other) && bits.HasPrefix(other)
}

// appendBit returns bits+bit in a freshly allocated slice, so that siblings
// in a tree walk never share a backing array.
func appendBit(bits Bits, bit byte) Bits {
	out := make(Bits, len(bits)+1)
	copy(out, bits)
	out[len(bits)] = bit
	return out
}

var (
	_ fmt.Stringer   = Bits(nil)
	_ fmt.GoStringer = Bits(nil)
)
