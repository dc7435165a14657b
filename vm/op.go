package vm

import (
	"strings"
)

// Op is a single byte opcode.
type Op byte

// Opcode byte values. These are part of the wire format and never change.
//
//go:generate go tool stringer -linecomment -type=Op
const (
	OP_PUSH      = Op(0)  // push
	OP_STORE     = Op(1)  // store
	OP_LOAD      = Op(2)  // load
	OP_ADD       = Op(3)  // add
	OP_SUB       = Op(4)  // sub
	OP_JUMPIF    = Op(5)  // jumpif
	OP_PRINT     = Op(6)  // print
	OP_HALT      = Op(7)  // halt
	OP_JUMP      = Op(8)  // jump
	OP_JUMPIFNOT = Op(9)  // jumpifnot
	OP_CALL      = Op(10) // call
	OP_RETURN    = Op(11) // return
	OP_MOD       = Op(12) // mod
	OP_MUL       = Op(13) // mul
	OP_EQ        = Op(14) // eq
	OP_NEQ       = Op(15) // neq

	opCount = 16
)

const (
	OPERAND_SIZE = 4 // Bytes in an encoded operand.
)

// mnemonicMap maps lower case mnemonics to opcodes.
var mnemonicMap = func() map[string]Op {
	m := make(map[string]Op, opCount)
	for op := range Op(opCount) {
		m[op.String()] = op
	}
	return m
}()

// LookupOp finds the opcode for a mnemonic, ignoring case.
func LookupOp(mnemonic string) (op Op, ok bool) {
	op, ok = mnemonicMap[strings.ToLower(mnemonic)]
	return
}

// Valid returns true if the opcode is defined.
func (op Op) Valid() bool {
	return op < opCount
}

// HasOperand returns true if the opcode is followed by a 4 byte operand.
func (op Op) HasOperand() bool {
	switch op {
	case OP_PUSH, OP_STORE, OP_LOAD,
		OP_JUMP, OP_JUMPIF, OP_JUMPIFNOT, OP_CALL:
		return true
	}
	return false
}

// Size returns the encoded size of the opcode and its operand.
func (op Op) Size() int {
	if op.HasOperand() {
		return 1 + OPERAND_SIZE
	}
	return 1
}

// Branches returns true if the operand is a code offset.
func (op Op) Branches() bool {
	switch op {
	case OP_JUMP, OP_JUMPIF, OP_JUMPIFNOT, OP_CALL:
		return true
	}
	return false
}
