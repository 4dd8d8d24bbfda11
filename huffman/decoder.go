package huffman

import (
	"strings"
)

// Decode reads bits, a string of '0' and '1', back into text by walking t
// from the root and emitting a symbol at each leaf reached.
//
// When t is a single leaf every '0' stands for its symbol.
// Decode reverses EncodeText for every non-empty valid UTF-8 text; other
// texts are refused by the encoder.
func Decode(bits string, t *Tree) (string, error) {
	if t == nil || t.Root == nil {
		return "", ErrEmptyInput
	}

	var sb strings.Builder
	root := t.Root
	if root.IsLeaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", &BitError{Bit: bits[i], Offset: i}
			}
			sb.WriteRune(root.Symbol)
		}
		return sb.String(), nil
	}

	cur := root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return "", &BitError{Bit: bits[i], Offset: i}
		}
		if cur == nil { // malformed tree with a missing child
			return "", &BitError{Bit: bits[i], Offset: i}
		}
		if cur.IsLeaf() {
			sb.WriteRune(cur.Symbol)
			cur = root
		}
	}
	if cur != root {
		return "", ErrTruncated
	}

	return sb.String(), nil
}
