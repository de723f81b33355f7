package huffman

import (
	"math"
	"sort"
)

// Symbol represents one unit of input.  Symbols are bytes; no multi-byte
// segmentation is performed.
type Symbol byte

// NumSymbols is the size of the Symbol alphabet.
const NumSymbols = 256

// Symbols converts a byte string into a sequence of Symbols.
func Symbols(text []byte) []Symbol {
	out := make([]Symbol, len(text))
	for i, b := range text {
		out[i] = Symbol(b)
	}
	return out
}

// FrequencyTable maps each Symbol present in the input to its number of
// occurrences.  Symbols that do not occur are absent, never zero.
type FrequencyTable map[Symbol]uint64

// Count tallies the occurrences of each Symbol in the input.  The result is
// never nil, even for empty input.
func Count(input []Symbol) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, symbol := range input {
		freqs[symbol]++
	}
	return freqs
}

// CountString is Count for a string, one Symbol per byte.
func CountString(s string) FrequencyTable {
	freqs := make(FrequencyTable)
	for i := 0; i < len(s); i++ {
		freqs[Symbol(s[i])]++
	}
	return freqs
}

// Merge sums partial tables per Symbol, for callers that count partitions of
// a large input separately.  Sums saturate at math.MaxUint64.
func Merge(partials ...FrequencyTable) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, partial := range partials {
		for symbol, n := range partial {
			if n == 0 {
				continue
			}
			freqs[symbol] = saturatingAdd(freqs[symbol], n)
		}
	}
	return freqs
}

// Total returns the sum of all counts, which equals the input length.
func (freqs FrequencyTable) Total() uint64 {
	var sum uint64
	for _, n := range freqs {
		sum = saturatingAdd(sum, n)
	}
	return sum
}

// Symbols returns the Symbols present in the table in ascending order.
func (freqs FrequencyTable) Symbols() []Symbol {
	out := make(bySymbol, 0, len(freqs))
	for symbol, n := range freqs {
		if n != 0 {
			out = append(out, symbol)
		}
	}
	out.Sort()
	return out
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
