package pipeline

import (
	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/internal/bitfield"
)

// executeMultiply runs a MUL/MLA instruction. It never flushes the
// pipeline.
func executeMultiply(c *cpu.CPU, word uint32) (bool, error) {
	accumulate := bitfield.Bit(word, 21)
	s := bitfield.Bit(word, 20)
	rd := uint8(bitfield.Bits(word, 19, 16))
	rn := uint8(bitfield.Bits(word, 15, 12))
	rs := uint8(bitfield.Bits(word, 11, 8))
	rm := uint8(bitfield.Bits(word, 3, 0))

	result := c.Registers.Reg(rm) * c.Registers.Reg(rs)
	if accumulate {
		result += c.Registers.Reg(rn)
	}
	c.Registers.SetReg(rd, result)

	if s {
		c.SetFlag(cpu.FlagN, bitfield.Bit(result, 31))
		c.SetFlag(cpu.FlagZ, result == 0)
	}

	return false, nil
}
