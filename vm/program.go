package vm

import (
	"fmt"
	"io"
	"iter"
)

// Opcode is one assembled source line.
type Opcode struct {
	LineNo      int      // Source line number.
	Ip          int      // Byte offset of the instruction.
	Words       []string // Source words.
	Instruction          // Assembled instruction, with any label resolved.
	LinkLabel   string   // Label the operand was linked to, if any.
}

// Program is an assembled byte stream and its listing.
type Program struct {
	Code    []byte
	Opcodes []Opcode
}

// Debug returns the listing entry covering the byte offset ip, or nil.
func (prog *Program) Debug(ip int) *Opcode {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+op.Size() {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

// Instructions iterates over the decoded instructions of the program.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return Instructions(prog.Code)
}

// Instructions iterates over the decoded instructions in code by offset,
// stopping at the first byte that does not decode.
func Instructions(code []byte) iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip := 0; ip < len(code); {
			ins, next, err := Decode(code, ip)
			if err != nil {
				return
			}
			if !yield(ip, ins) {
				return
			}
			ip = next
		}
	}
}

// Disassemble writes one line per instruction in code to w.
// Bytes that do not decode are listed as data and disassembly ends.
func Disassemble(w io.Writer, code []byte) (err error) {
	for ip := 0; ip < len(code); {
		ins, next, derr := Decode(code, ip)
		if derr != nil {
			_, err = fmt.Fprintf(w, "%6d\t.byte %v\t; %v\n", ip, code[ip:], derr)
			return
		}
		_, err = fmt.Fprintf(w, "%6d\t%v\n", ip, ins)
		if err != nil {
			return
		}
		ip = next
	}

	return
}
