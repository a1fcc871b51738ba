// Package pipeline drives the three-stage fetch/decode/execute pipeline
// over a CPU: the barrel shifter and the four category executors, plus
// the Pipe state machine that ties them together.
package pipeline

import (
	"fmt"

	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/insts"
)

// Pipe is the three-slot pipeline (fetching, decoding, executing) driving
// one CPU to completion. executing is never held across ticks: it is
// dispatched in the same tick it is shifted in from decoding.
type Pipe struct {
	cpu     *cpu.CPU
	decoder *insts.Decoder

	fetching     uint32 // 0 means "nothing fetched"; the halt sentinel
	fetchingAddr uint32

	decoding     *insts.Instruction
	decodingAddr uint32

	halted bool
}

// NewPipe constructs a Pipe for c, priming the fetching slot from
// whatever PC currently holds (normally 0, right after loading an
// image).
func NewPipe(c *cpu.CPU) *Pipe {
	p := &Pipe{cpu: c, decoder: insts.NewDecoder()}
	p.primeFetch()
	return p
}

func (p *Pipe) primeFetch() {
	p.fetchingAddr = p.cpu.PC()
	p.fetching = p.cpu.FetchLE(p.fetchingAddr)
	p.cpu.IncrementPC()
}

// Halted reports whether the pipeline has fully drained.
func (p *Pipe) Halted() bool {
	return p.halted
}

// Run ticks the pipeline to completion.
func (p *Pipe) Run() error {
	for !p.halted {
		if err := p.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Tick advances the pipeline by one step.
func (p *Pipe) Tick() error {
	if p.fetching != 0 {
		return p.normalTick()
	}
	return p.drainTick()
}

func (p *Pipe) normalTick() error {
	executing := p.decoding
	executingAddr := p.decodingAddr

	decoded := p.decoder.Decode(p.fetching)
	decodedAddr := p.fetchingAddr

	taken := false
	if executing != nil {
		var err error
		taken, err = p.dispatch(executing, executingAddr)
		if err != nil {
			return err
		}
	}

	if taken {
		p.decoding = nil
		p.primeFetch()
		return nil
	}

	p.decoding = &decoded
	p.decodingAddr = decodedAddr
	p.primeFetch()
	return nil
}

func (p *Pipe) drainTick() error {
	if p.decoding == nil {
		p.halted = true
		return nil
	}

	inst := p.decoding
	addr := p.decodingAddr
	p.decoding = nil

	taken, err := p.dispatch(inst, addr)
	if err != nil {
		return err
	}

	if taken {
		p.primeFetch()
		return nil
	}

	p.cpu.IncrementPC()
	p.halted = true
	return nil
}

// dispatch gates inst on its condition field and, if it passes, routes it
// to the executor for its category.
func (p *Pipe) dispatch(inst *insts.Instruction, addr uint32) (bool, error) {
	cond := cpu.DecodeCondition(inst.Raw)
	ok, err := p.cpu.CheckCondition(cond)
	if err != nil {
		return false, fmt.Errorf("instruction 0x%08X at address 0x%08X: %w", inst.Raw, addr, err)
	}
	if !ok {
		return false, nil
	}

	switch inst.Category {
	case insts.CategoryBranch:
		return executeBranch(p.cpu, inst.Raw, addr), nil
	case insts.CategoryMultiply:
		return executeMultiply(p.cpu, inst.Raw)
	case insts.CategorySingleDataTransfer:
		return executeSingleDataTransfer(p.cpu, inst.Raw)
	case insts.CategoryDataProcess:
		return executeDataProcess(p.cpu, inst.Raw)
	default:
		return false, fmt.Errorf("instruction 0x%08X at address 0x%08X: unknown category %v", inst.Raw, addr, inst.Category)
	}
}
