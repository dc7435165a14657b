package vm

import (
	"errors"

	"github.com/ezrec/stackvm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrStackEmpty       = errors.New(f("stack empty"))
	ErrStackFull        = errors.New(f("stack full"))
	ErrCallStackEmpty   = errors.New(f("call stack empty"))
	ErrDivideByZero     = errors.New(f("mod by zero"))
	ErrIpInvalid        = errors.New(f("ip invalid"))
	ErrMemorySize       = errors.New(f("memory size invalid"))
	ErrStackLimit       = errors.New(f("stack limit invalid"))
	ErrOperandTruncated = errors.New(f("operand truncated"))

	// Assembler errors
	ErrLabelSyntax        = errors.New(f("label definition must stand alone"))
	ErrLabelInvalid       = errors.New(f("label name invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
)

// ErrLabelMissing is returned for a label reference with no definition.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcode is returned when an undefined opcode byte is fetched.
type ErrOpcode Op

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrMemoryRange is returned for a memory access outside of [0, Size).
type ErrMemoryRange struct {
	Addr int32
	Size int
}

func (err ErrMemoryRange) Error() string {
	return f("memory address %d out of range [0, %d)", err.Addr, err.Size)
}

// ErrFault locates a runtime error at the instruction that raised it.
type ErrFault struct {
	Ip  int
	Op  Op
	Err error
}

func (err *ErrFault) Error() string {
	return f("ip %d %v: %v", err.Ip, err.Op, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembly error in the source text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
