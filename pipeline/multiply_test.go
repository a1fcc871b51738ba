package pipeline

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/arm7pipe/cpu"
)

func mulWord(cond uint32, accumulate, s bool, rd, rn, rs, rm uint8) uint32 {
	word := cond<<28 | uint32(rd)<<16 | uint32(rn)<<12 | uint32(rs)<<8 | 0b1001<<4 | uint32(rm)
	if accumulate {
		word |= 1 << 21
	}
	if s {
		word |= 1 << 20
	}
	return word
}

var _ = Describe("executeMultiply", func() {
	var c *cpu.CPU

	BeforeEach(func() {
		c = cpu.New()
	})

	It("MUL multiplies Rm by Rs into Rd", func() {
		c.Registers.SetReg(2, 6)
		c.Registers.SetReg(1, 7)
		word := mulWord(0xE, false, false, 3, 0, 1, 2)
		_, err := executeMultiply(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Registers.Reg(3)).To(Equal(uint32(42)))
	})

	It("MLA adds Rn into the product", func() {
		c.Registers.SetReg(2, 6)
		c.Registers.SetReg(1, 7)
		c.Registers.SetReg(4, 100)
		word := mulWord(0xE, true, false, 3, 4, 1, 2)
		_, err := executeMultiply(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Registers.Reg(3)).To(Equal(uint32(142)))
	})

	It("sets Z when the result is zero and S=1", func() {
		c.Registers.SetReg(2, 0)
		c.Registers.SetReg(1, 7)
		word := mulWord(0xE, false, true, 3, 0, 1, 2)
		_, err := executeMultiply(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.GetFlag(cpu.FlagZ)).To(BeTrue())
	})

	It("leaves flags untouched when S=0", func() {
		c.SetFlag(cpu.FlagZ, true)
		c.Registers.SetReg(2, 5)
		c.Registers.SetReg(1, 5)
		word := mulWord(0xE, false, false, 3, 0, 1, 2)
		_, err := executeMultiply(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.GetFlag(cpu.FlagZ)).To(BeTrue())
	})
})
