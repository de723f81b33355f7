package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
)

// PriorityQueue is a min-ordered collection of tree nodes keyed by frequency.
//
// Nodes with equal frequency are extracted in the order they were inserted,
// which makes tree construction reproducible for identical input.
//
type PriorityQueue struct {
	h       nodeHeap
	nextSeq uint64
}

// NewPriorityQueue constructs a PriorityQueue holding the given nodes, in
// that insertion order.
func NewPriorityQueue(nodes ...*Node) *PriorityQueue {
	pq := &PriorityQueue{}
	pq.h.list = make([]queueItem, 0, len(nodes))
	for _, node := range nodes {
		pq.h.list = append(pq.h.list, pq.wrap(node))
	}
	heap.Init(&pq.h)
	return pq
}

// Insert adds a node to the queue.
func (pq *PriorityQueue) Insert(node *Node) {
	heap.Push(&pq.h, pq.wrap(node))
}

// ExtractMin removes and returns a node with the minimum frequency currently
// present.  It fails with ErrEmptyStructure if the queue is empty.
func (pq *PriorityQueue) ExtractMin() (*Node, error) {
	if pq.h.Len() == 0 {
		return nil, fmt.Errorf("ExtractMin: %w", ErrEmptyStructure)
	}
	item := heap.Pop(&pq.h).(queueItem)
	return item.node, nil
}

// Len returns the number of nodes in the queue.
func (pq *PriorityQueue) Len() int {
	return pq.h.Len()
}

// Dump writes a programmer-readable listing of the queue's nodes, in the
// order ExtractMin would return them, to the given writer.  The queue itself
// is left unchanged.
func (pq *PriorityQueue) Dump(w io.Writer) (int64, error) {
	scratch := nodeHeap{list: make([]queueItem, len(pq.h.list))}
	copy(scratch.list, pq.h.list)

	var buf bytes.Buffer
	buf.WriteString("PriorityQueue{\n")
	for scratch.Len() != 0 {
		item := heap.Pop(&scratch).(queueItem)
		if item.node.IsLeaf() {
			fmt.Fprintf(&buf, "\t%q = %d\n", rune(item.node.Symbol), item.node.Freq)
		} else {
			fmt.Fprintf(&buf, "\t* = %d\n", item.node.Freq)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (pq *PriorityQueue) wrap(node *Node) queueItem {
	item := queueItem{node: node, seq: pq.nextSeq}
	pq.nextSeq++
	return item
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
