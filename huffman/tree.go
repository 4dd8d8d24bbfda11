package huffman

import (
	"container/heap"
	"fmt"
)

// Node is a node of a Huffman tree. A leaf carries a symbol, an internal
// node has exactly two children and no symbol. Children are owned by their
// parent alone.
type Node struct {
	Symbol rune  // meaningful for leaves only
	Weight int   // sum of the frequencies of the symbols below
	Left   *Node // reached with a 0 bit
	Right  *Node // reached with a 1 bit
	seq    int   // creation order, breaks ties between equal weights
}

// IsLeaf reports whether n carries a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a Huffman code tree.
type Tree struct {
	Root *Node
}

// priorityQueue implements a min-heap of nodes, ordered by weight and then
// by creation order.
type priorityQueue []*Node

func (pq *priorityQueue) Len() int { return len(*pq) }
func (pq *priorityQueue) Less(i, j int) bool {
	a, b := (*pq)[i], (*pq)[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}
func (pq *priorityQueue) Swap(i, j int) { (*pq)[i], (*pq)[j] = (*pq)[j], (*pq)[i] }

func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}

// Pop removes the last node; heap.Pop swaps the lightest one there first.
func (pq *priorityQueue) Pop() interface{} {
	n := len(*pq)
	item := (*pq)[n-1]
	(*pq)[n-1] = nil
	*pq = (*pq)[:n-1]
	return item
}

var _ heap.Interface = (*priorityQueue)(nil)

// BuildTree builds the Huffman tree for the given frequencies.
//
// Leaves enter the queue in ascending symbol order and every node is
// numbered as it is created; among nodes of equal weight the older one is
// extracted first. The first node extracted in a merge becomes the left
// child. The resulting tree therefore only depends on the frequencies, not
// on map iteration order.
//
// Zero frequencies are accepted and produce weight-0 leaves.
func BuildTree(freq Frequencies) (*Tree, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := freq.Symbols()
	pq := make(priorityQueue, 0, len(symbols))
	for i, symbol := range symbols {
		f := freq[symbol]
		if f < 0 {
			return nil, fmt.Errorf("%w: %q has frequency %d", ErrNegativeFrequency, symbol, f)
		}
		pq = append(pq, &Node{Symbol: symbol, Weight: f, seq: i})
	}
	heap.Init(&pq)

	// Build the tree by merging the two smallest nodes until one node remains.
	seq := len(symbols)
	for pq.Len() > 1 {
		left := heap.Pop(&pq).(*Node)
		right := heap.Pop(&pq).(*Node)

		heap.Push(&pq, &Node{
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
			seq:    seq,
		})
		seq++
	}

	return &Tree{Root: pq[0]}, nil
}

// Weight is the weight of the root, i.e. the length of the text the tree
// was built from. An empty tree weighs 0.
func (t *Tree) Weight() int {
	if t == nil || t.Root == nil {
		return 0
	}
	return t.Root.Weight
}

// Leaves counts the leaves of t, one per symbol.
func (t *Tree) Leaves() int {
	leaves, _ := t.count()
	return leaves
}

// InternalNodes counts the nodes of t that have children.
func (t *Tree) InternalNodes() int {
	_, internal := t.count()
	return internal
}

func (t *Tree) count() (leaves, internal int) {
	t.walk(func(n *Node, _ int) {
		if n.IsLeaf() {
			leaves++
		} else {
			internal++
		}
	})
	return
}

// Depth is the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	depth := 0
	t.walk(func(_ *Node, d int) {
		if d > depth {
			depth = d
		}
	})
	return depth
}

// CodeLengths returns the depth of every leaf. A tree with a single leaf
// reports a length of 1, matching the code DeriveCodes assigns to it.
func (t *Tree) CodeLengths() map[rune]int {
	lengths := make(map[rune]int)
	t.walk(func(n *Node, depth int) {
		if n.IsLeaf() {
			lengths[n.Symbol] = max(depth, 1)
		}
	})
	return lengths
}

// walk visits every node of t in pre-order, left before right.
func (t *Tree) walk(visit func(n *Node, depth int)) {
	if t == nil || t.Root == nil {
		return
	}

	type stackElem struct {
		node  *Node
		depth int
	}
	stack := []stackElem{{t.Root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(e.node, e.depth)
		if e.node.Right != nil {
			stack = append(stack, stackElem{e.node.Right, e.depth + 1})
		}
		if e.node.Left != nil {
			stack = append(stack, stackElem{e.node.Left, e.depth + 1})
		}
	}
}
