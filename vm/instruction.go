package vm

import (
	"encoding/binary"
	"fmt"
)

// Instruction is a decoded opcode and its operand.
// Operand is zero for opcodes that take none.
type Instruction struct {
	Op      Op
	Operand int32
}

// Size returns the encoded size of the instruction.
func (ins Instruction) Size() int {
	return ins.Op.Size()
}

// Append appends the encoded instruction to buf.
func (ins Instruction) Append(buf []byte) []byte {
	buf = append(buf, byte(ins.Op))
	if ins.Op.HasOperand() {
		buf = binary.BigEndian.AppendUint32(buf, uint32(ins.Operand))
	}
	return buf
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	if ins.Op.HasOperand() {
		return fmt.Sprintf("%v %d", ins.Op, ins.Operand)
	}
	return ins.Op.String()
}

// Encode encodes a sequence of instructions into bytecode.
func Encode(instructions ...Instruction) (code []byte) {
	for _, ins := range instructions {
		code = ins.Append(code)
	}
	return
}

// Decode decodes the instruction at offset ip, returning it and the
// offset of the following instruction.
func Decode(code []byte, ip int) (ins Instruction, next int, err error) {
	if ip < 0 || ip >= len(code) {
		err = ErrIpInvalid
		return
	}

	ins.Op = Op(code[ip])
	if !ins.Op.Valid() {
		err = ErrOpcode(ins.Op)
		return
	}

	next = ip + 1
	if !ins.Op.HasOperand() {
		return
	}

	if len(code)-next < OPERAND_SIZE {
		err = ErrOperandTruncated
		return
	}

	ins.Operand = getOperand(code, next)
	next += OPERAND_SIZE

	return
}

// getOperand reads a big endian signed operand at offset.
func getOperand(code []byte, offset int) int32 {
	return int32(binary.BigEndian.Uint32(code[offset : offset+OPERAND_SIZE]))
}

// putOperand writes a big endian signed operand at offset.
func putOperand(code []byte, offset int, value int32) {
	binary.BigEndian.PutUint32(code[offset:offset+OPERAND_SIZE], uint32(value))
}
