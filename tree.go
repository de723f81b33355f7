package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  A leaf carries a Symbol and its
// frequency; an internal node carries the sum of its children's frequencies
// and has both Left and Right set.  Nodes are not modified once built.
type Node struct {
	Left   *Node
	Right  *Node
	Freq   uint64
	Symbol Symbol
}

// NewLeaf constructs a leaf Node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Freq: freq}
}

// NewInternal constructs an internal Node owning the two given children.
func NewInternal(left, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node needs two children: left=%p right=%p", left, right)
	return &Node{Left: left, Right: right, Freq: saturatingAdd(left.Freq, right.Freq)}
}

// IsLeaf returns true iff this Node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a Huffman tree.  A nil *Tree stands for the absent tree built from
// empty input; every method accepts it.
type Tree struct {
	root      *Node
	numLeaves int
}

// BuildTree constructs the Huffman tree for the given frequencies.  Leaves
// are loaded into a PriorityQueue in ascending Symbol order; the two
// lowest-frequency nodes A and B (in extraction order) are then merged into
// an internal node with Left=A and Right=B until one node remains.
//
// If freqs holds exactly one Symbol, that Symbol's leaf is the root.  If
// freqs is empty, BuildTree returns nil.
//
func BuildTree(freqs FrequencyTable) *Tree {
	symbols := freqs.Symbols()
	if len(symbols) == 0 {
		return nil
	}

	leaves := make([]*Node, len(symbols))
	for index, symbol := range symbols {
		leaves[index] = NewLeaf(symbol, freqs[symbol])
	}

	pq := NewPriorityQueue(leaves...)
	for pq.Len() > 1 {
		a, err := pq.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin A with Len()=%d: %v", pq.Len(), err)
		b, err := pq.ExtractMin()
		assert.Assertf(err == nil, "ExtractMin B with Len()=%d: %v", pq.Len(), err)
		pq.Insert(NewInternal(a, b))
	}

	root, err := pq.ExtractMin()
	assert.Assertf(err == nil, "ExtractMin root: %v", err)
	return &Tree{root: root, numLeaves: len(leaves)}
}

// Root returns the root Node, or nil for the absent tree.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// NumLeaves returns the number of leaves, which equals the number of distinct
// Symbols the tree was built from.
func (t *Tree) NumLeaves() int {
	if t == nil {
		return 0
	}
	return t.numLeaves
}

// Walk calls fn for each leaf in left-to-right order, with the path taken
// from the root to reach it.  The root-is-leaf tree reports an empty path.
func (t *Tree) Walk(fn func(leaf *Node, path Bits)) {
	if t == nil || t.root == nil {
		return
	}
	walkNode(t.root, nil, fn)
}

func walkNode(n *Node, path Bits, fn func(*Node, Bits)) {
	if n.IsLeaf() {
		fn(n, path)
		return
	}
	walkNode(n.Left, appendBit(path, 0), fn)
	walkNode(n.Right, appendBit(path, 1), fn)
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one line per node in depth-first order.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if root := t.Root(); root != nil {
		dumpNode(&buf, root, nil)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, path Bits) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "\t%#v: %q = %d\n", path, rune(n.Symbol), n.Freq)
		return
	}
	fmt.Fprintf(buf, "\t%#v: * = %d\n", path, n.Freq)
	dumpNode(buf, n.Left, appendBit(path, 0))
	dumpNode(buf, n.Right, appendBit(path, 1))
}
