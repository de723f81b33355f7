package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack writes bits into bytes, most significant bit first.  The last byte is
// padded with zero bits.  Pack fails with ErrInvalidBit if bits holds a value
// other than 0 or 1.
//
// The result carries no length; callers keep len(bits) to Unpack it.
func Pack(bits Bits) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)

	w := bitio.NewWriter(&buf)
	for offset, bit := range bits {
		if bit > 1 {
			return nil, fmt.Errorf("offset %d: bit value %d: %w", offset, bit, ErrInvalidBit)
		}
		if err := w.WriteBool(bit == 1); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack reads the first n bits out of data, as written by Pack.  It fails
// with ErrTruncatedStream if data holds fewer than n bits.
func Unpack(data []byte, n int) (Bits, error) {
	if have := 8 * len(data); n > have {
		return nil, fmt.Errorf("want %d bits, have %d: %w", n, have, ErrTruncatedStream)
	}

	out := make(Bits, n)
	r := bitio.NewReader(bytes.NewReader(data))
	for i := 0; i < n; i++ {
		b, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		if b {
			out[i] = 1
		}
	}
	return out, nil
}
