package huffman

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequencies maps each symbol of a text to its number of occurrences.
type Frequencies map[rune]int

// CountFrequencies counts the occurrences of every rune in text.
// An empty text yields an empty, non-nil map.
func CountFrequencies(text string) Frequencies {
	freq := make(Frequencies)
	for _, r := range text {
		freq[r]++
	}
	return freq
}

// Total is the sum of all counts, i.e. the length of the text in runes.
func (f Frequencies) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// Symbols returns the distinct symbols in ascending order.
func (f Frequencies) Symbols() []rune {
	symbols := maps.Keys(f)
	slices.Sort(symbols)
	return symbols
}
