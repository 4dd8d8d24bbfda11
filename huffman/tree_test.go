package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTreeHello(t *testing.T) {
	tree, err := BuildTree(CountFrequencies("Hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, tree.Weight())
	assert.Equal(t, 4, tree.Leaves())
	assert.Equal(t, 3, tree.InternalNodes())
	assert.Equal(t, 2, tree.Depth())
	assert.Equal(t, map[rune]int{'H': 2, 'e': 2, 'l': 2, 'o': 2}, tree.CodeLengths())

	// H and e are the two oldest lightest leaves, o is merged with l
	root := tree.Root
	assert.Equal(t, 2, root.Left.Weight)
	assert.Equal(t, 'H', root.Left.Left.Symbol)
	assert.Equal(t, 'e', root.Left.Right.Symbol)
	assert.Equal(t, 3, root.Right.Weight)
	assert.Equal(t, 'o', root.Right.Left.Symbol)
	assert.Equal(t, 'l', root.Right.Right.Symbol)
}

func TestBuildTreeWeights(t *testing.T) {
	tree, err := BuildTree(CountFrequencies("AABCBDEABBDC"))
	require.NoError(t, err)

	assert.Equal(t, 12, tree.Weight())
	assert.Equal(t, 5, tree.Leaves())
	assert.Equal(t, 4, tree.InternalNodes())

	sum := 0
	tree.walk(func(n *Node, _ int) {
		if n.IsLeaf() {
			sum += n.Weight
		} else {
			assert.Equal(t, n.Left.Weight+n.Right.Weight, n.Weight)
		}
	})
	assert.Equal(t, 12, sum)
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	tree, err := BuildTree(CountFrequencies("AAAA"))
	require.NoError(t, err)

	require.True(t, tree.Root.IsLeaf())
	assert.Equal(t, 'A', tree.Root.Symbol)
	assert.Equal(t, 4, tree.Weight())
	assert.Equal(t, 1, tree.Leaves())
	assert.Zero(t, tree.InternalNodes())
	assert.Zero(t, tree.Depth())
	assert.Equal(t, map[rune]int{'A': 1}, tree.CodeLengths())
}

func TestBuildTreeEmpty(t *testing.T) {
	tree, err := BuildTree(Frequencies{})
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, tree)

	assert.Zero(t, tree.Weight())
	assert.Zero(t, tree.Leaves())
}

func TestBuildTreeNegativeFrequency(t *testing.T) {
	_, err := BuildTree(Frequencies{'a': 3, 'b': -1})
	require.ErrorIs(t, err, ErrNegativeFrequency)
	assert.Contains(t, err.Error(), "'b'")
}

func TestBuildTreeZeroFrequencies(t *testing.T) {
	tree, err := BuildTree(Frequencies{'a': 0, 'b': 0, 'c': 5})
	require.NoError(t, err)
	assert.Equal(t, 5, tree.Weight())
	assert.Equal(t, 3, tree.Leaves())
	assert.Equal(t, map[rune]int{'a': 2, 'b': 2, 'c': 1}, tree.CodeLengths())
}

// Classic textbook distribution.
func TestBuildTreeCodeLengths(t *testing.T) {
	tree, err := BuildTree(Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	require.NoError(t, err)
	assert.Equal(t, map[rune]int{'a': 4, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1}, tree.CodeLengths())
	assert.Equal(t, 100, tree.Weight())
	assert.Equal(t, 4, tree.Depth())
}

func TestBuildTreeDeterministic(t *testing.T) {
	// many ties: every symbol appears the same number of times
	freq := make(Frequencies)
	for r := 'a'; r <= 'z'; r++ {
		freq[r] = 7
	}
	expected := DeriveCodes(mustBuildTree(t, freq))
	for i := 0; i < 20; i++ {
		require.Equal(t, expected, DeriveCodes(mustBuildTree(t, freq)))
	}
}

func mustBuildTree(t *testing.T, freq Frequencies) *Tree {
	tree, err := BuildTree(freq)
	require.NoError(t, err)
	return tree
}
