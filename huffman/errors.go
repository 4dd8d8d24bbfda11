package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is no symbol to build a tree from.
	ErrEmptyInput = errors.New("no symbols to encode")
	// ErrNegativeFrequency is returned by BuildTree for a count below zero.
	ErrNegativeFrequency = errors.New("negative frequency")
	// ErrUnknownSymbol is wrapped by LookupError.
	ErrUnknownSymbol = errors.New("symbol not in code table")
	// ErrInvalidBit is wrapped by BitError.
	ErrInvalidBit = errors.New("invalid bit")
	// ErrTruncated is returned by Decode when the bits stop inside a code.
	ErrTruncated = errors.New("bitstring ends in the middle of a code")
	// ErrInvalidUTF8 is returned when the text to encode is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// LookupError reports a symbol of the input that has no code.
// This happens when the code table was derived from a different text.
type LookupError struct {
	Symbol rune
	Offset int // byte offset of the symbol in the input
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("symbol %q at offset %d not in code table", e.Symbol, e.Offset)
}

func (e *LookupError) Unwrap() error { return ErrUnknownSymbol }

// BitError reports a bit the decoder could not follow.
type BitError struct {
	Bit    byte
	Offset int
}

func (e *BitError) Error() string {
	return fmt.Sprintf("invalid bit %q at offset %d", e.Bit, e.Offset)
}

func (e *BitError) Unwrap() error { return ErrInvalidBit }
