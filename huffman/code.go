package huffman

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeTable maps each symbol to its code, a string of '0' and '1'.
type CodeTable map[rune]string

// DeriveCodes assigns every leaf of t the path leading to it from the root,
// '0' for a left turn and '1' for a right one.
//
// A tree made of a single leaf has no path to speak of; its symbol gets the
// code "0" so that it still takes up room in an encoded text.
// An empty tree yields an empty table.
func DeriveCodes(t *Tree) CodeTable {
	codes := make(CodeTable)
	if t == nil || t.Root == nil {
		return codes
	}
	if t.Root.IsLeaf() {
		codes[t.Root.Symbol] = "0"
		return codes
	}

	path := make([]byte, 0, 16)
	var traverse func(n *Node)
	traverse = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			codes[n.Symbol] = string(path)
			return
		}
		path = append(path, '0')
		traverse(n.Left)
		path[len(path)-1] = '1'
		traverse(n.Right)
		path = path[:len(path)-1]
	}
	traverse(t.Root)

	return codes
}

// Symbols returns the symbols of the table in ascending order.
func (c CodeTable) Symbols() []rune {
	symbols := maps.Keys(c)
	slices.Sort(symbols)
	return symbols
}

// EncodedLen is the number of bits needed to encode a text with the given
// frequencies. Symbols missing from the table are ignored.
func (c CodeTable) EncodedLen(freq Frequencies) int {
	n := 0
	for symbol, f := range freq {
		n += f * len(c[symbol])
	}
	return n
}

// IsPrefixFree reports whether no code of the table is a prefix of another,
// and no code is empty.
func (c CodeTable) IsPrefixFree() bool {
	codes := maps.Values(c)
	slices.Sort(codes)
	for i, code := range codes {
		if code == "" {
			return false
		}
		// in sorted order a prefix sits right before the codes extending it
		if i > 0 && strings.HasPrefix(code, codes[i-1]) {
			return false
		}
	}
	return true
}

// String lists the codes in symbol order, one per line.
func (c CodeTable) String() string {
	var sb strings.Builder
	for _, symbol := range c.Symbols() {
		sb.WriteString(strconv.QuoteRune(symbol))
		sb.WriteString(": ")
		sb.WriteString(c[symbol])
		sb.WriteByte('\n')
	}
	return sb.String()
}
