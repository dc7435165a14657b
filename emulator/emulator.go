// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts a stack machine run: it assembles source with the
// machine parameters predefined, builds a fresh machine per run, maps faults
// back to source lines and enforces an optional tick budget.
package emulator

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/stackvm/internal"
	vmio "github.com/ezrec/stackvm/io"
	"github.com/ezrec/stackvm/vm"
)

const (
	TICK_BUDGET = 1_000_000 // Default tick budget of the emulator.
)

// Emulator state. Program + machine + print tape.
type Emulator struct {
	Verbose     bool        // If set, enables verbose logging.
	*vm.Machine             // Machine for the current run.
	Program     *vm.Program // Currently loaded program listing.

	MemorySize int // Memory cells given to each machine.
	StackLimit int // Stack depth limit, or 0 for none.
	Budget     int // Maximum ticks per run, or 0 for none.

	Tape vmio.Tape // Printed values, one per line.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program:    &vm.Program{},
		MemorySize: vm.MEMORY_SIZE,
		Budget:     TICK_BUDGET,
	}

	return
}

func (emu *Emulator) options() (opts []vm.Option) {
	opts = []vm.Option{
		vm.WithMemorySize(emu.MemorySize),
		vm.WithStackLimit(emu.StackLimit),
		vm.WithVerbose(emu.Verbose),
	}
	if emu.Tape.Output != nil {
		opts = append(opts, vm.WithSink(&emu.Tape))
	}
	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := maps.All(map[string]string{
		"TICK_BUDGET": fmt.Sprintf("%d", emu.Budget),
	})

	probe, err := vm.NewMachine(nil, emu.options()...)
	if err != nil {
		return defines
	}

	return internal.IterSeq2Concat(defines, probe.Defines())
}

// Assemble loads a program from source text.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &vm.Assembler{Verbose: emu.Verbose}
	for equ, value := range emu.Defines() {
		asm.Predefine(equ, value)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset discards any prior run and builds a fresh machine for the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Budget < 0 {
		err = ErrBudgetSize
		return
	}

	emu.Tape.Rewind()
	emu.Machine, err = vm.NewMachine(emu.Program.Code, emu.options()...)

	return
}

// LineNo returns the source line number of the next instruction, or 0.
func (emu *Emulator) LineNo() int {
	if emu.Machine == nil {
		return 0
	}

	op := emu.Program.Debug(emu.Machine.Ip)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Machine == nil {
		err = ErrNoMachine
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	m := emu.Machine
	if !m.Halted && m.Ip < len(m.Code) && emu.Budget > 0 && m.Ticks >= emu.Budget {
		done = true
		err = ErrBudget
		return
	}

	done, err = emu.Machine.Tick()

	return
}

// Run ticks the current machine until it halts, faults or runs out of budget.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
	}

	return
}
