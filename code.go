package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its code.  Tables produced by GenerateCodes
// and Canonicalize are prefix-free: no code is a prefix of another.
type CodeTable map[Symbol]Bits

// GenerateCodes walks the tree depth-first and assigns each leaf the path
// taken to reach it, 0 for Left and 1 for Right.
//
// The root-is-leaf tree of a single distinct Symbol has no path to walk; its
// Symbol is assigned the one-bit code "0", and the Decoder reads one Symbol
// per 0 bit for such a tree.  A nil tree produces an empty table.
//
func GenerateCodes(t *Tree) CodeTable {
	codes := make(CodeTable, t.NumLeaves())
	t.Walk(func(leaf *Node, path Bits) {
		if len(path) == 0 {
			path = Bits{0}
		}
		codes[leaf.Symbol] = path
	})
	return codes
}

// Symbols returns the Symbols in the table in ascending order.
func (codes CodeTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(codes))
	for symbol := range codes {
		out = append(out, symbol)
	}
	out.Sort()
	return out
}

// Cost returns the number of bits needed to encode an input with the given
// frequencies: the sum over Symbols of count × code length.  Symbols with no
// code contribute nothing.
func (codes CodeTable) Cost(freqs FrequencyTable) uint64 {
	var sum uint64
	for symbol, n := range freqs {
		sum = saturatingAdd(sum, n*uint64(len(codes[symbol])))
	}
	return sum
}

// IsPrefixFree reports whether no code in the table is a prefix of another
// and no code is empty.
func (codes CodeTable) IsPrefixFree() bool {
	symbols := codes.Symbols()
	for i, a := range symbols {
		if len(codes[a]) == 0 {
			return false
		}
		for _, b := range symbols[i+1:] {
			if codes[a].HasPrefix(codes[b]) || codes[b].HasPrefix(codes[a]) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, in ascending Symbol order.
func (codes CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, symbol := range codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %#v\n", rune(symbol), codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Canonicalize returns the canonical Huffman code with the same code length
// for every Symbol, per the algorithm in RFC 1951 Section 3.2.2: Symbols are
// sorted by (length, Symbol) and assigned consecutive codes, shifting left
// whenever the length grows.
func Canonicalize(codes CodeTable) CodeTable {
	out := make(CodeTable, len(codes))
	if len(codes) == 0 {
		return out
	}

	// Step 1: sort the symbols by (len(codes[Symbol]), Symbol) ascending.

	sorted := make(bySize, 0, len(codes))
	for symbol, code := range codes {
		assert.Assertf(len(code) != 0, "symbol %q has an empty code", rune(symbol))
		sorted = append(sorted, symbolAndSize{symbol, len(code)})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	nextCode := make(Bits, sorted[0].size)
	for index, item := range sorted {
		for len(nextCode) < item.size {
			nextCode = append(nextCode, 0)
		}
		out[item.symbol] = append(Bits(nil), nextCode...)
		if index+1 < len(sorted) {
			var ok bool
			nextCode, ok = increment(nextCode)
			assert.Assertf(ok, "code lengths overflow at symbol %q", rune(item.symbol))
		}
	}
	return out
}

// increment treats bits as a big-endian binary number and adds one.  It
// returns false if every bit was already 1.
func increment(bits Bits) (Bits, bool) {
	out := append(Bits(nil), bits...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == 0 {
			out[i] = 1
			return out, true
		}
		out[i] = 0
	}
	return out, false
}

// TreeFromCodes rebuilds a decoding tree from a code table, such as one
// returned by Canonicalize.  The table must be prefix-free and complete:
// every internal node of the resulting tree must have two children.  The
// single-Symbol table {s: "0"} yields the root-is-leaf tree.  Rebuilt nodes
// carry a frequency of zero.
//
// Tables that do not meet these requirements are rejected with
// ErrInvalidCode.  An empty table yields a nil tree.
//
func TreeFromCodes(codes CodeTable) (*Tree, error) {
	symbols := codes.Symbols()
	switch len(symbols) {
	case 0:
		return nil, nil
	case 1:
		symbol := symbols[0]
		if code := codes[symbol]; !code.Equal(Bits{0}) {
			return nil, fmt.Errorf("symbol %q: single-symbol code must be \"0\", got %#v: %w", rune(symbol), code, ErrInvalidCode)
		}
		return &Tree{root: NewLeaf(symbol, 0), numLeaves: 1}, nil
	}

	type trieNode struct {
		child [2]*trieNode
		leaf  bool
		sym   Symbol
	}

	root := &trieNode{}
	for _, symbol := range symbols {
		code := codes[symbol]
		if len(code) == 0 {
			return nil, fmt.Errorf("symbol %q: empty code: %w", rune(symbol), ErrInvalidCode)
		}
		cur := root
		for offset, bit := range code {
			if bit > 1 {
				return nil, fmt.Errorf("symbol %q: offset %d: bit value %d: %w", rune(symbol), offset, bit, ErrInvalidCode)
			}
			if cur.leaf {
				return nil, fmt.Errorf("symbol %q: code %#v extends the code of %q: %w", rune(symbol), code, rune(cur.sym), ErrInvalidCode)
			}
			if cur.child[bit] == nil {
				cur.child[bit] = &trieNode{}
			}
			cur = cur.child[bit]
		}
		if cur.leaf || cur.child[0] != nil || cur.child[1] != nil {
			return nil, fmt.Errorf("symbol %q: code %#v is a prefix of another code: %w", rune(symbol), code, ErrInvalidCode)
		}
		cur.leaf = true
		cur.sym = symbol
	}

	var convert func(tn *trieNode, path Bits) (*Node, error)
	convert = func(tn *trieNode, path Bits) (*Node, error) {
		if tn.leaf {
			return NewLeaf(tn.sym, 0), nil
		}
		if tn.child[0] == nil || tn.child[1] == nil {
			return nil, fmt.Errorf("prefix %#v has only one child: incomplete code: %w", path, ErrInvalidCode)
		}
		left, err := convert(tn.child[0], appendBit(path, 0))
		if err != nil {
			return nil, err
		}
		right, err := convert(tn.child[1], appendBit(path, 1))
		if err != nil {
			return nil, err
		}
		return NewInternal(left, right), nil
	}

	rootNode, err := convert(root, nil)
	if err != nil {
		return nil, err
	}
	return &Tree{root: rootNode, numLeaves: len(symbols)}, nil
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   int
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	ay, ai := a.symbol, a.size
	by, bi := b.symbol, b.size
	if ai != bi {
		return ai < bi
	}
	return ay < by
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
