// Package huffman builds Huffman codes for byte strings, and uses them to
// encode a string into a sequence of bits and to decode the bits back.
//
// The pipeline runs leaf-first: Count tallies a FrequencyTable, BuildTree
// merges leaves through a PriorityQueue into a Tree, GenerateCodes walks the
// Tree into a CodeTable, Encode concatenates codes, and a Decoder walks the
// Tree one bit at a time.  Run ties the stages together into a Report.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package huffman
