package main

import (
	"fmt"

	"github.com/sarchlab/arm7pipe/cpu"
)

// benchScenario is one of the canonical end-to-end scenarios bundled into
// the bench subcommand so a build can be smoke-tested without an external
// .bin fixture on disk.
type benchScenario struct {
	name  string
	words []uint32
	check func(c *cpu.CPU) (bool, string)
}

func expectReg(c *cpu.CPU, reg uint8, want uint32) (bool, string) {
	got := c.Registers.Reg(reg)
	if got != want {
		return false, fmt.Sprintf("r%d = 0x%X, want 0x%X", reg, got, want)
	}
	return true, ""
}

func expectPC(c *cpu.CPU, want uint32) (bool, string) {
	if c.PC() != want {
		return false, fmt.Sprintf("PC = 0x%X, want 0x%X", c.PC(), want)
	}
	return true, ""
}

func expectCPSR(c *cpu.CPU, want uint32) (bool, string) {
	if c.Registers.CPSR() != want {
		return false, fmt.Sprintf("CPSR = 0x%X, want 0x%X", c.Registers.CPSR(), want)
	}
	return true, ""
}

var benchScenarios = []benchScenario{
	{
		name:  "adds two immediates in sequence",
		words: []uint32{0xe3a01001, 0xe2812002},
		check: func(c *cpu.CPU) (bool, string) {
			if ok, why := expectReg(c, 1, 1); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 2, 3); !ok {
				return false, why
			}
			if ok, why := expectPC(c, 16); !ok {
				return false, why
			}
			return expectCPSR(c, 0)
		},
	},
	{
		name:  "adds a register operand built from two prior immediates",
		words: []uint32{0xe3a01001, 0xe3a02002, 0xe0810002},
		check: func(c *cpu.CPU) (bool, string) {
			if ok, why := expectReg(c, 1, 1); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 2, 2); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 3, 3); !ok {
				return false, why
			}
			return expectPC(c, 20)
		},
	},
	{
		name:  "taken branch skips the intervening instruction",
		words: []uint32{0xe3a01001, 0xea000000, 0xe3a02002, 0xe3a03003},
		check: func(c *cpu.CPU) (bool, string) {
			if ok, why := expectReg(c, 1, 1); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 3, 3); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 2, 0); !ok {
				return false, why
			}
			return expectPC(c, 24)
		},
	},
	{
		name:  "conditional branch is taken when the compared registers are equal",
		words: []uint32{0xe3a01001, 0xe3a02001, 0xe1510002, 0x0a000000, 0xe3a03003, 0xe3a04004},
		check: func(c *cpu.CPU) (bool, string) {
			if ok, why := expectReg(c, 1, 1); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 2, 1); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 4, 4); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 3, 0); !ok {
				return false, why
			}
			if ok, why := expectPC(c, 32); !ok {
				return false, why
			}
			return expectCPSR(c, 0x60000000)
		},
	},
	{
		name:  "backward branch loops a counter up to 0xff",
		words: []uint32{0xe3a0283f, 0xe2422001, 0xe35200ff, 0x1afffffc},
		check: func(c *cpu.CPU) (bool, string) {
			if ok, why := expectReg(c, 2, 0xff); !ok {
				return false, why
			}
			if ok, why := expectPC(c, 24); !ok {
				return false, why
			}
			return expectCPSR(c, 0x60000000)
		},
	},
	{
		name: "computes a factorial in a loop and stores the result",
		words: []uint32{
			0xe3a00001,
			0xe3a01005,
			0xe0020091,
			0xe1a00002,
			0xe2411001,
			0xe3510000,
			0x1afffffa,
			0xe3a03c01,
			0xe5830020,
		},
		check: func(c *cpu.CPU) (bool, string) {
			if ok, why := expectReg(c, 0, 120); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 2, 120); !ok {
				return false, why
			}
			if ok, why := expectReg(c, 3, 0x100); !ok {
				return false, why
			}
			if ok, why := expectPC(c, 0x2c); !ok {
				return false, why
			}
			return expectCPSR(c, 0x60000000)
		},
	},
}
