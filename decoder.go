package huffman

import (
	"fmt"
)

// Decoder walks a Huffman tree one bit at a time.  Its state is the current
// position in the tree, which starts at the root: a 0 bit moves to the left
// child and a 1 bit to the right child.  Reaching a leaf emits its Symbol
// and resets the position to the root.
//
// For the root-is-leaf tree of a single distinct Symbol, each 0 bit emits
// that Symbol and a 1 bit is rejected, matching the "0" code assigned by
// GenerateCodes.
//
type Decoder struct {
	tree     *Tree
	cur      *Node
	consumed int
}

// NewDecoder constructs a Decoder for the given tree, which may be nil.
func NewDecoder(t *Tree) *Decoder {
	d := &Decoder{}
	d.Init(t)
	return d
}

// Init initializes this Decoder to decode with the given tree.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t, cur: t.Root()}
}

// Reset returns this Decoder to the root without changing its tree.
func (d *Decoder) Reset() {
	d.Init(d.tree)
}

// AtRoot returns true iff no code is partially consumed.
func (d *Decoder) AtRoot() bool {
	return d.cur == d.tree.Root()
}

// Step consumes one bit.  If the bit completes a code, Step returns its
// Symbol with emitted set to true.
//
// Step fails with ErrNullTree if the Decoder has no tree, and with
// ErrInvalidBit if bit is neither 0 nor 1 or selects a branch that does not
// exist.  The Decoder's position is unchanged after an error.
//
func (d *Decoder) Step(bit byte) (symbol Symbol, emitted bool, err error) {
	root := d.tree.Root()
	if root == nil {
		return 0, false, fmt.Errorf("offset %d: %w", d.consumed, ErrNullTree)
	}
	if bit > 1 {
		return 0, false, fmt.Errorf("offset %d: bit value %d: %w", d.consumed, bit, ErrInvalidBit)
	}

	var next *Node
	if root.IsLeaf() {
		if bit != 0 {
			return 0, false, fmt.Errorf("offset %d: single-symbol tree has no branch for bit 1: %w", d.consumed, ErrInvalidBit)
		}
		next = root
	} else if bit == 0 {
		next = d.cur.Left
	} else {
		next = d.cur.Right
	}

	d.consumed++
	if next.IsLeaf() {
		d.cur = root
		return next.Symbol, true, nil
	}
	d.cur = next
	return 0, false, nil
}

// Finish reports whether the bits consumed so far ended on a code boundary.
// It fails with ErrTruncatedStream if the Decoder is partway down a path.
func (d *Decoder) Finish() error {
	if !d.AtRoot() {
		return fmt.Errorf("after %d bits: %w", d.consumed, ErrTruncatedStream)
	}
	return nil
}

// Decode decodes a complete bit stream with the given tree.
//
// An empty stream decodes to an empty sequence, with or without a tree.
// Otherwise Decode fails with ErrNullTree if t is nil, ErrInvalidBit for a
// bit outside {0, 1}, and ErrTruncatedStream if the stream ends mid-code; no
// partial result is returned on failure.
//
func Decode(t *Tree, bits Bits) ([]Symbol, error) {
	out := make([]Symbol, 0, len(bits))
	if len(bits) == 0 {
		return out, nil
	}

	d := NewDecoder(t)
	for _, bit := range bits {
		symbol, emitted, err := d.Step(bit)
		if err != nil {
			return nil, err
		}
		if emitted {
			out = append(out, symbol)
		}
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeString is Decode for a stream rendered as '0' and '1' characters.
// It returns the decoded Symbols as a string, one byte per Symbol.
func DecodeString(t *Tree, s string) (string, error) {
	bits, err := ParseBits(s)
	if err != nil {
		return "", err
	}
	symbols, err := Decode(t, bits)
	if err != nil {
		return "", err
	}
	return symbolsToString(symbols), nil
}

func symbolsToString(symbols []Symbol) string {
	buf := make([]byte, len(symbols))
	for i, symbol := range symbols {
		buf[i] = byte(symbol)
	}
	return string(buf)
}
