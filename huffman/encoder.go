package huffman

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Encoding is a text encoded with its own Huffman code.
type Encoding struct {
	Bits  string
	Freq  Frequencies
	Tree  *Tree
	Codes CodeTable
}

// EncodeText counts the symbols of text, builds their tree and code table
// and encodes text with it. It fails with ErrEmptyInput on an empty text
// and with ErrInvalidUTF8 when text is not valid UTF-8.
func EncodeText(text string) (*Encoding, error) {
	if err := validUTF8(text); err != nil {
		return nil, err
	}
	freq := CountFrequencies(text)
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	codes := DeriveCodes(tree)
	bits, err := EncodeWith(text, codes)
	if err != nil {
		return nil, err
	}
	return &Encoding{Bits: bits, Freq: freq, Tree: tree, Codes: codes}, nil
}

// Encode returns the bits of text under the Huffman code built from text
// itself. Decoding them requires the tree, see EncodeText.
func Encode(text string) (string, error) {
	e, err := EncodeText(text)
	if err != nil {
		return "", err
	}
	return e.Bits, nil
}

// EncodeWith concatenates the codes of the symbols of text, in order.
// Every symbol of text must have a code; the first one that does not is
// reported as a *LookupError. Text that is not valid UTF-8 is rejected
// with ErrInvalidUTF8.
func EncodeWith(text string, codes CodeTable) (string, error) {
	if err := validUTF8(text); err != nil {
		return "", err
	}
	var sb strings.Builder
	for offset, r := range text {
		code, ok := codes[r]
		if !ok {
			return "", &LookupError{Symbol: r, Offset: offset}
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// validUTF8 reports the first byte of text that does not start a valid
// UTF-8 sequence. Such bytes would all count as utf8.RuneError.
func validUTF8(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	for offset := 0; offset < len(text); {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w at offset %d", ErrInvalidUTF8, offset)
		}
		offset += size
	}
	return nil
}
