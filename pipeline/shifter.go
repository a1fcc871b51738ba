package pipeline

import (
	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/internal/bitfield"
)

// ShiftType identifies which of the four barrel-shifter operations a
// register-form operand2 field selects.
type ShiftType uint8

// The four shift types, keyed by bits 6..5 of the operand2 field.
const (
	ShiftLSL ShiftType = 0
	ShiftLSR ShiftType = 1
	ShiftASR ShiftType = 2
	ShiftROR ShiftType = 3
)

// shiftResult is the barrel shifter's output: the shifted value and the
// carry-out bit flag-setting instructions consume.
type shiftResult struct {
	value    uint32
	carryOut bool
}

// regOffsetShift implements the barrel shifter over a 12-bit operand2
// field. c supplies the register file (for the shifted register and,
// for a register-specified shift amount, the shift-amount register) and
// the previous carry flag (preserved when amount is 0 for LSR/ASR/ROR).
func regOffsetShift(c *cpu.CPU, field uint32) shiftResult {
	rm := bitfield.Bits(field, 3, 0)
	shiftType := ShiftType(bitfield.Bits(field, 6, 5))
	x := c.Registers.Reg(uint8(rm))

	var amount uint32
	if bitfield.Bit(field, 4) {
		rs := bitfield.Bits(field, 11, 8)
		amount = c.Registers.Reg(uint8(rs)) & 0xFF
	} else {
		amount = bitfield.Bits(field, 11, 7)
	}

	return shift(c, x, shiftType, amount)
}

// shift applies shiftType to x by amount. regOffsetShift calls it once it
// has read the shifted register and the shift amount; the data-processing
// immediate path does not use it and rotates with bitfield.RotateRight
// directly.
func shift(c *cpu.CPU, x uint32, shiftType ShiftType, amount uint32) shiftResult {
	switch shiftType {
	case ShiftLSL:
		if amount == 0 {
			return shiftResult{value: x, carryOut: false}
		}
		carryOut := bitfield.Bit(x, uint(32-amount))
		return shiftResult{value: x << amount, carryOut: carryOut}

	case ShiftLSR:
		if amount == 0 {
			return shiftResult{value: x, carryOut: c.GetFlag(cpu.FlagC)}
		}
		carryOut := bitfield.Bit(x, uint(amount-1))
		return shiftResult{value: x >> amount, carryOut: carryOut}

	case ShiftASR:
		if amount == 0 {
			return shiftResult{value: x, carryOut: c.GetFlag(cpu.FlagC)}
		}
		carryOut := bitfield.Bit(x, uint(amount-1))
		return shiftResult{value: uint32(int32(x) >> amount), carryOut: carryOut}

	case ShiftROR:
		if amount == 0 {
			return shiftResult{value: x, carryOut: c.GetFlag(cpu.FlagC)}
		}
		carryOut := bitfield.Bit(x, uint(amount-1))
		return shiftResult{value: bitfield.RotateRight(x, uint(amount)), carryOut: carryOut}

	default:
		return shiftResult{value: x, carryOut: false}
	}
}
