package pipeline

import (
	"fmt"

	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/internal/bitfield"
)

// dpOpcode is one of the 10 defined data-processing opcodes.
type dpOpcode uint8

const (
	dpAND dpOpcode = 0
	dpEOR dpOpcode = 1
	dpSUB dpOpcode = 2
	dpRSB dpOpcode = 3
	dpADD dpOpcode = 4
	dpTST dpOpcode = 8
	dpTEQ dpOpcode = 9
	dpCMP dpOpcode = 10
	dpORR dpOpcode = 12
	dpMOV dpOpcode = 13
)

// writesRd reports whether opcode writes its result back to Rd (the test
// opcodes TST/TEQ/CMP only update flags).
func (op dpOpcode) writesRd() bool {
	switch op {
	case dpTST, dpTEQ, dpCMP:
		return false
	default:
		return true
	}
}

// ErrBadOpcode reports a data-processing opcode outside the 10-value
// table.
type ErrBadOpcode struct {
	Opcode uint8
}

func (e *ErrBadOpcode) Error() string {
	return fmt.Sprintf("undefined data-processing opcode 0x%X", e.Opcode)
}

// operand2 computes operand2 and its carry-out for a data-processing
// instruction.
func operand2(c *cpu.CPU, word uint32) shiftResult {
	if bitfield.Bit(word, 25) {
		imm := bitfield.Bits(word, 7, 0)
		rotate := bitfield.Bits(word, 11, 8) * 2
		rotated := bitfield.RotateRight(imm, uint(rotate))
		carryOut := rotate != 0 && bitfield.Bit(rotated, 31)
		return shiftResult{value: rotated, carryOut: carryOut}
	}
	return regOffsetShift(c, bitfield.Bits(word, 11, 0))
}

// executeDataProcess runs a DATA_PROCESS instruction. It returns
// takenBranch=false always; data processing never flushes the pipeline.
func executeDataProcess(c *cpu.CPU, word uint32) (bool, error) {
	opcode := dpOpcode(bitfield.Bits(word, 24, 21))
	switch opcode {
	case dpAND, dpEOR, dpSUB, dpRSB, dpADD, dpTST, dpTEQ, dpCMP, dpORR, dpMOV:
	default:
		return false, &ErrBadOpcode{Opcode: uint8(opcode)}
	}

	s := bitfield.Bit(word, 20)
	rn := uint8(bitfield.Bits(word, 19, 16))
	rd := uint8(bitfield.Bits(word, 15, 12))

	op2 := operand2(c, word)
	rnValue := c.Registers.Reg(rn)

	var result uint32
	var carryOut bool
	hasCarry := true

	switch opcode {
	case dpAND, dpTST:
		result = rnValue & op2.value
		carryOut = op2.carryOut
	case dpEOR, dpTEQ:
		result = rnValue ^ op2.value
		carryOut = op2.carryOut
	case dpORR:
		result = rnValue | op2.value
		carryOut = op2.carryOut
	case dpMOV:
		result = op2.value
		carryOut = op2.carryOut
	case dpADD:
		result = rnValue + op2.value
		carryOut = uint64(rnValue)+uint64(op2.value) >= 1<<32
	case dpSUB, dpCMP:
		result = rnValue - op2.value
		carryOut = op2.value <= rnValue
	case dpRSB:
		result = op2.value - rnValue
		carryOut = rnValue <= op2.value
	default:
		hasCarry = false
	}

	if opcode.writesRd() {
		c.Registers.SetReg(rd, result)
	}

	if s {
		c.SetFlag(cpu.FlagN, bitfield.Bit(result, 31))
		c.SetFlag(cpu.FlagZ, result == 0)
		if hasCarry {
			c.SetFlag(cpu.FlagC, carryOut)
		}
	}

	return false, nil
}
