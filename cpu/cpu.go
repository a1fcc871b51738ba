package cpu

// CPU bundles the register file and memory owned by a single emulation.
// It owns both exclusively for the lifetime of the run; nothing outside
// the pipeline driver mutates them concurrently.
type CPU struct {
	Registers *RegisterFile
	Memory    *Memory
}

// Option is a functional option for constructing a CPU, matching the
// construction idiom used throughout this repository's execution units.
type Option func(*CPU)

// WithMemory overrides the CPU's memory with one already populated by the
// caller (the loader uses this after validating an image).
func WithMemory(mem *Memory) Option {
	return func(c *CPU) {
		c.Memory = mem
	}
}

// New creates a CPU with a zero register file and zero-initialized
// memory, then applies opts in order.
func New(opts ...Option) *CPU {
	c := &CPU{
		Registers: NewRegisterFile(),
		Memory:    NewMemory(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromImage loads image into a fresh CPU's memory at offset 0. It is
// the common construction path for the CLI and the bench harness.
func NewFromImage(image []byte) (*CPU, error) {
	mem, err := NewMemoryFromImage(image)
	if err != nil {
		return nil, err
	}
	return New(WithMemory(mem)), nil
}

// PC returns the current program counter.
func (c *CPU) PC() uint32 {
	return c.Registers.PC()
}

// IncrementPC advances PC by 4.
func (c *CPU) IncrementPC() {
	c.Registers.IncrementPC()
}

// OffsetPC adds delta to PC using wrapping 32-bit arithmetic.
func (c *CPU) OffsetPC(delta int32) {
	c.Registers.OffsetPC(delta)
}

// GetFlag reports whether the given CPSR flag is set.
func (c *CPU) GetFlag(f Flag) bool {
	return c.Registers.GetFlag(f)
}

// SetFlag sets or clears the given CPSR flag.
func (c *CPU) SetFlag(f Flag, value bool) {
	c.Registers.SetFlag(f, value)
}

// CheckCondition evaluates cond against the current flags.
func (c *CPU) CheckCondition(cond Condition) (bool, error) {
	return c.Registers.CheckCondition(cond)
}

// FetchLE reads a little-endian 32-bit word from memory at addr.
func (c *CPU) FetchLE(addr uint32) uint32 {
	return c.Memory.FetchLE(addr)
}

// FetchBE reads a big-endian 32-bit word from memory at addr.
func (c *CPU) FetchBE(addr uint32) uint32 {
	return c.Memory.FetchBE(addr)
}

// StoreLE writes a little-endian 32-bit word to memory at addr.
func (c *CPU) StoreLE(addr uint32, word uint32) {
	c.Memory.StoreLE(addr, word)
}
