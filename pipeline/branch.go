package pipeline

import (
	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/internal/bitfield"
)

// executeBranch runs a BRANCH instruction, computing the target from
// instrAddr (the address the branch was fetched from, not whatever PC has
// advanced to by the time it reaches execute) plus the word-aligned
// 24-bit signed offset and the pipeline's fixed PC+8 lookahead. It always
// reports taken=true: a BRANCH instruction that reaches execution has
// already passed its condition check (the pipeline driver gates on that
// before dispatching), and unlike data processing it always flushes the
// two instructions behind it.
func executeBranch(c *cpu.CPU, word uint32, instrAddr uint32) bool {
	offset := bitfield.Bits(word, 23, 0) << 2
	signedOffset := bitfield.SignExtend(offset, 25)
	target := uint32(int32(instrAddr) + 8 + signedOffset)
	c.Registers.SetReg(cpu.PCIndex, target)
	return true
}
