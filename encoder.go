package huffman

import (
	"fmt"
)

// Encode concatenates the code of each input Symbol, in input order.
//
// If any Symbol has no entry in codes, Encode fails with an error wrapping
// ErrUnknownSymbol.  This cannot happen when codes was generated from the
// same input, but can when a foreign CodeTable is supplied.
//
func Encode(input []Symbol, codes CodeTable) (Bits, error) {
	var n int
	for offset, symbol := range input {
		code, found := codes[symbol]
		if !found {
			return nil, fmt.Errorf("offset %d: symbol %q: %w", offset, rune(symbol), ErrUnknownSymbol)
		}
		n += len(code)
	}

	out := make(Bits, 0, n)
	for _, symbol := range input {
		out = append(out, codes[symbol]...)
	}
	return out, nil
}

// EncodeString is Encode for a string, one Symbol per byte.
func EncodeString(s string, codes CodeTable) (Bits, error) {
	return Encode(Symbols([]byte(s)), codes)
}
