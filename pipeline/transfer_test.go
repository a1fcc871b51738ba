package pipeline

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/arm7pipe/cpu"
)

// sdtWord builds a single-data-transfer word with an immediate 12-bit
// offset. p=pre-index, u=up, l=load.
func sdtWord(cond uint32, p, u, l bool, rn, rd uint8, offset uint32) uint32 {
	word := cond<<28 | 1<<26 | uint32(rn)<<16 | uint32(rd)<<12 | offset
	if p {
		word |= 1 << 24
	}
	if u {
		word |= 1 << 23
	}
	if l {
		word |= 1 << 20
	}
	return word
}

var _ = Describe("executeSingleDataTransfer", func() {
	var c *cpu.CPU

	BeforeEach(func() {
		c = cpu.New()
	})

	It("STR then LDR pre-indexed round-trips a value through memory", func() {
		c.Registers.SetReg(1, 0x100)
		c.Registers.SetReg(2, 0xCAFEBABE)

		word := sdtWord(0xE, true, true, false, 1, 2, 4)
		_, err := executeSingleDataTransfer(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.FetchLE(0x104)).To(Equal(uint32(0xCAFEBABE)))

		loadWord := sdtWord(0xE, true, true, true, 1, 3, 4)
		_, err = executeSingleDataTransfer(c, loadWord)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Registers.Reg(3)).To(Equal(uint32(0xCAFEBABE)))
	})

	It("leaves the base register untouched in pre-indexed mode", func() {
		c.Registers.SetReg(1, 0x100)
		word := sdtWord(0xE, true, true, true, 1, 2, 4)
		_, err := executeSingleDataTransfer(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Registers.Reg(1)).To(Equal(uint32(0x100)))
	})

	It("transfers at the unmodified base and then writes back in post-indexed mode", func() {
		c.Registers.SetReg(1, 0x100)
		c.Registers.SetReg(2, 0x11223344)
		word := sdtWord(0xE, false, true, false, 1, 2, 8)
		_, err := executeSingleDataTransfer(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.FetchLE(0x100)).To(Equal(uint32(0x11223344)))
		Expect(c.Registers.Reg(1)).To(Equal(uint32(0x108)))
	})

	It("subtracts the offset when U=0", func() {
		c.Registers.SetReg(1, 0x100)
		c.Registers.SetReg(2, 0xABCDEF01)
		word := sdtWord(0xE, true, false, false, 1, 2, 4)
		_, err := executeSingleDataTransfer(c, word)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.FetchLE(0xFC)).To(Equal(uint32(0xABCDEF01)))
	})
})
