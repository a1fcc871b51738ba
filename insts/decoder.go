// Package insts provides the instruction classifier for this ARM-like
// 32-bit instruction set: a pure function from a raw 32-bit word to one
// of four category tags.
package insts

import "github.com/sarchlab/arm7pipe/internal/bitfield"

// Category identifies which executor a decoded instruction dispatches to.
type Category uint8

// The four categories this ISA subset recognizes. The declaration order
// is not the test order: classify tests BRANCH, MULTIPLY and
// SINGLE_DATA_TRANSFER in that order and falls back to DATA_PROCESS.
const (
	CategoryDataProcess Category = iota
	CategoryBranch
	CategoryMultiply
	CategorySingleDataTransfer
)

// String names a category for diagnostics.
func (c Category) String() string {
	switch c {
	case CategoryBranch:
		return "BRANCH"
	case CategoryMultiply:
		return "MULTIPLY"
	case CategorySingleDataTransfer:
		return "SINGLE_DATA_TRANSFER"
	case CategoryDataProcess:
		return "DATA_PROCESS"
	default:
		return "UNKNOWN"
	}
}

// Instruction is a decoded instruction: the raw word plus its category.
// The category gates which executor runs; the executor re-derives every
// field it needs from Raw itself, the same way the decoder's own
// classification predicates do.
type Instruction struct {
	Raw      uint32
	Category Category
}

// Decoder classifies raw 32-bit words into instruction categories. It is
// a pure function with no internal state; NewDecoder exists so call
// sites read the same way as the rest of this module's constructors.
type Decoder struct{}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode classifies word. It does not inspect the condition field; the
// executors do that.
func (d *Decoder) Decode(word uint32) Instruction {
	return Instruction{Raw: word, Category: classify(word)}
}

// classify applies the fixed bit-pattern tests in priority order: the
// first match wins.
func classify(word uint32) Category {
	switch {
	case isBranch(word):
		return CategoryBranch
	case isMultiply(word):
		return CategoryMultiply
	case isSingleDataTransfer(word):
		return CategorySingleDataTransfer
	default:
		return CategoryDataProcess
	}
}

// isBranch reports bits 27..24 == 1010.
func isBranch(word uint32) bool {
	return bitfield.Bits(word, 27, 24) == 0b1010
}

// isMultiply reports bits 27..22 == 000000 and bits 7..4 == 1001.
func isMultiply(word uint32) bool {
	return bitfield.Bits(word, 27, 22) == 0b000000 && bitfield.Bits(word, 7, 4) == 0b1001
}

// isSingleDataTransfer reports bits 27..26 == 01.
func isSingleDataTransfer(word uint32) bool {
	return bitfield.Bits(word, 27, 26) == 0b01
}
