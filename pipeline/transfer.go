package pipeline

import (
	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/internal/bitfield"
)

// executeSingleDataTransfer runs an LDR/STR instruction. It never
// flushes the pipeline.
func executeSingleDataTransfer(c *cpu.CPU, word uint32) (bool, error) {
	immediateOffset := !bitfield.Bit(word, 25)
	preIndexed := bitfield.Bit(word, 24)
	up := bitfield.Bit(word, 23)
	load := bitfield.Bit(word, 20)
	rn := uint8(bitfield.Bits(word, 19, 16))
	rd := uint8(bitfield.Bits(word, 15, 12))

	var offset uint32
	if immediateOffset {
		offset = bitfield.Bits(word, 11, 0)
	} else {
		offset = regOffsetShift(c, bitfield.Bits(word, 11, 0)).value
	}

	base := c.Registers.Reg(rn)
	var transferAddr uint32
	if preIndexed {
		if up {
			transferAddr = base + offset
		} else {
			transferAddr = base - offset
		}
	} else {
		transferAddr = base
	}

	if load {
		c.Registers.SetReg(rd, c.FetchLE(transferAddr))
	} else {
		c.StoreLE(transferAddr, c.Registers.Reg(rd))
	}

	if !preIndexed {
		if up {
			c.Registers.SetReg(rn, base+offset)
		} else {
			c.Registers.SetReg(rn, base-offset)
		}
	}

	return false, nil
}
