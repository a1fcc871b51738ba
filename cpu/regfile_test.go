package cpu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/arm7pipe/cpu"
)

var _ = Describe("RegisterFile", func() {
	var r *cpu.RegisterFile

	BeforeEach(func() {
		r = cpu.NewRegisterFile()
	})

	It("starts with all 17 registers at zero", func() {
		for i := uint8(0); i < cpu.NumRegisters; i++ {
			Expect(r.Reg(i)).To(Equal(uint32(0)))
		}
	})

	It("advances PC by 4 on IncrementPC", func() {
		r.SetReg(cpu.PCIndex, 0x1000)
		r.IncrementPC()
		Expect(r.PC()).To(Equal(uint32(0x1004)))
	})

	It("applies a signed offset with wrapping arithmetic", func() {
		r.SetReg(cpu.PCIndex, 0x100)
		r.OffsetPC(-0x104)
		Expect(r.PC()).To(Equal(uint32(0xFFFFFFFC)))
	})

	Describe("flags", func() {
		It("sets and clears each flag independently", func() {
			r.SetFlag(cpu.FlagN, true)
			r.SetFlag(cpu.FlagC, true)

			Expect(r.GetFlag(cpu.FlagN)).To(BeTrue())
			Expect(r.GetFlag(cpu.FlagZ)).To(BeFalse())
			Expect(r.GetFlag(cpu.FlagC)).To(BeTrue())
			Expect(r.GetFlag(cpu.FlagV)).To(BeFalse())

			r.SetFlag(cpu.FlagN, false)
			Expect(r.GetFlag(cpu.FlagN)).To(BeFalse())
			Expect(r.GetFlag(cpu.FlagC)).To(BeTrue())
		})

		It("never sets a bit outside 31..28", func() {
			r.SetFlag(cpu.FlagN, true)
			r.SetFlag(cpu.FlagZ, true)
			r.SetFlag(cpu.FlagC, true)
			r.SetFlag(cpu.FlagV, true)

			Expect(r.CPSR()).To(Equal(uint32(0xF0000000)))
		})
	})
})
