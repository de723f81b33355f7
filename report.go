package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// Options adjusts the behavior of Run.
type Options struct {
	// Canonical replaces the tree-derived codes with the canonical code of
	// the same lengths, and decodes with a tree rebuilt from that code.
	Canonical bool
}

var defaultOptions = Options{}

func checkOptions(o *Options) *Options {
	if o == nil {
		o = &defaultOptions
	}
	return o
}

// Entry is one row of a Report's code listing.
type Entry struct {
	Symbol Symbol
	Freq   uint64
	Code   Bits
}

// Report holds everything derived from one input by Run.
type Report struct {
	// Entries lists each distinct Symbol, by descending frequency and then
	// ascending Symbol.
	Entries []Entry

	// InputLen is the input length in Symbols.
	InputLen int

	// Encoded is the encoded bit stream.
	Encoded Bits

	// Decoded is the result of decoding Encoded.
	Decoded []Symbol

	// Packed is Encoded packed eight bits per byte.
	Packed []byte
}

// DecodedString returns Decoded as a string, one byte per Symbol.
func (r *Report) DecodedString() string {
	return symbolsToString(r.Decoded)
}

// Run counts the input, builds the tree and code table, then encodes,
// decodes and packs.  A failure is reported as a *StageError naming the
// stage.  Empty input produces an empty Report without error.
func Run(input []byte, o *Options) (*Report, error) {
	o = checkOptions(o)

	symbols := Symbols(input)
	freqs := Count(symbols)
	tree := BuildTree(freqs)
	codes := GenerateCodes(tree)

	if o.Canonical {
		codes = Canonicalize(codes)
		var err error
		tree, err = TreeFromCodes(codes)
		if err != nil {
			return nil, &StageError{Stage: "canonicalize", Err: err}
		}
	}

	encoded, err := Encode(symbols, codes)
	if err != nil {
		return nil, &StageError{Stage: "encode", Err: err}
	}

	decoded, err := Decode(tree, encoded)
	if err != nil {
		return nil, &StageError{Stage: "decode", Err: err}
	}

	packed, err := Pack(encoded)
	if err != nil {
		return nil, &StageError{Stage: "pack", Err: err}
	}

	entries := make(byFreq, 0, len(freqs))
	for symbol, n := range freqs {
		entries = append(entries, Entry{Symbol: symbol, Freq: n, Code: codes[symbol]})
	}
	entries.Sort()

	return &Report{
		Entries:  entries,
		InputLen: len(symbols),
		Encoded:  encoded,
		Decoded:  decoded,
		Packed:   packed,
	}, nil
}

// WriteTo writes a human-readable rendering of the Report: the code listing,
// the encoded bits, the decoded text and the sizes.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	tw := tabwriter.NewWriter(&buf, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Symbol\tFrequency\tCode")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%q\t%d\t%s\n", rune(e.Symbol), e.Freq, e.Code)
	}
	_ = tw.Flush()

	fmt.Fprintf(&buf, "\nEncoded: %s\n", r.Encoded)
	fmt.Fprintf(&buf, "Decoded: %s\n", r.DecodedString())
	fmt.Fprintf(&buf, "Size: %d bits in, %d bits out (%d bytes packed)\n", 8*r.InputLen, len(r.Encoded), len(r.Packed))
	return buf.WriteTo(w)
}

var _ io.WriterTo = (*Report)(nil)

// type byFreq {{{

type byFreq []Entry

func (list byFreq) Len() int {
	return len(list)
}

func (list byFreq) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byFreq) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Freq != b.Freq {
		return a.Freq > b.Freq
	}
	return a.Symbol < b.Symbol
}

func (list byFreq) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byFreq(nil)

// }}}
