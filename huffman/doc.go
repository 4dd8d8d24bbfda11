// Package huffman implements static Huffman coding of text.
//
// A text is turned into a string of '0' and '1' characters in four steps:
// its runes are counted (CountFrequencies), a code tree is built by
// repeatedly merging the two lightest nodes (BuildTree), each leaf is
// assigned the path leading to it (DeriveCodes) and finally the text is
// rewritten symbol by symbol (EncodeWith). Encode chains the four.
//
// Trees are built deterministically: the same frequencies always give the
// same codes. Decode reverses the process given the tree.
package huffman
