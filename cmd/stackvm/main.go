// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/stackvm/emulator"
	"github.com/ezrec/stackvm/internal"
	vmio "github.com/ezrec/stackvm/io"
	"github.com/ezrec/stackvm/vm"
)

func main() {
	var compile string
	var output string
	var dump bool
	var disasm bool
	var memory int
	var budget int
	var limit int
	var tape int
	var verbose bool

	flag.StringVar(&compile, "c", "-", "Assembly source file")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.BoolVar(&dump, "a", false, "Print assembled bytes, do not execute")
	flag.BoolVar(&disasm, "d", false, "Print disassembly, do not execute")
	flag.IntVar(&memory, "m", vm.MEMORY_SIZE, "Memory cells")
	flag.IntVar(&budget, "n", emulator.TICK_BUDGET, "Tick budget, 0 for none")
	flag.IntVar(&limit, "l", 0, "Stack depth limit, 0 for none")
	flag.IntVar(&tape, "t", 0, "Maximum printed values, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var inf io.Reader = os.Stdin
	if compile != "-" {
		file, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer file.Close()
		inf = file
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.MemorySize = memory
	emu.Budget = budget
	emu.StackLimit = limit
	emu.Tape.Output = ouf
	emu.Tape.Limit = tape

	if verbose {
		log.Printf("defines: %v", internal.IterSeq2Collect(emu.Defines()))
	}

	err := emu.Assemble(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	switch {
	case dump:
		err = vmio.WriteBytes(ouf, emu.Program.Code)
		if err == nil {
			_, err = fmt.Fprintln(ouf)
		}
	case disasm:
		err = vm.Disassemble(ouf, emu.Program.Code)
	default:
		err = emu.Reset()
		if err == nil {
			err = emu.Run()
		}
		if err != nil && verbose && emu.Machine != nil {
			log.Print(emu.Machine.String())
		}
	}

	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
