package vm

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/ezrec/stackvm/io"
)

// Option configures a Machine at construction.
type Option func(m *Machine) error

// WithMemorySize sets the number of memory cells. The default is MEMORY_SIZE.
func WithMemorySize(size int) Option {
	return func(m *Machine) error {
		if size < 0 {
			return ErrMemorySize
		}
		m.Memory = NewMemory(size)
		return nil
	}
}

// WithStackLimit bounds the depth of both the operand and call stacks.
// Zero, the default, leaves them unbounded.
func WithStackLimit(limit int) Option {
	return func(m *Machine) error {
		if limit < 0 {
			return ErrStackLimit
		}
		m.Stack.Limit = limit
		m.CallStack.Limit = limit
		return nil
	}
}

// WithSink mirrors every printed value to sink.
func WithSink(sink io.Sink) Option {
	return func(m *Machine) error {
		m.Sink = sink
		return nil
	}
}

// WithVerbose enables logging of every executed instruction.
func WithVerbose(verbose bool) Option {
	return func(m *Machine) error {
		m.Verbose = verbose
		return nil
	}
}

// Machine is the execution state of one program run.
// A Machine is used for a single run and then discarded.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Code      []byte       // Program being executed. Never modified.
	Ip        int          // Offset of the next instruction.
	Stack     Stack[int32] // Operand stack.
	CallStack Stack[int]   // Return addresses.
	Memory    *Memory      // Data memory.
	Output    []int32      // Values printed so far.
	Sink      io.Sink      // Optional host sink for printed values.

	Halted bool  // Set once the machine stops.
	Fault  error // Error that halted the machine, if any.
	Ticks  int   // Instructions executed.
}

// NewMachine creates a machine ready to run code.
func NewMachine(code []byte, opts ...Option) (m *Machine, err error) {
	m = &Machine{
		Code: code,
	}

	for _, opt := range opts {
		err = opt(m)
		if err != nil {
			m = nil
			return
		}
	}

	if m.Memory == nil {
		m.Memory = NewMemory(MEMORY_SIZE)
	}

	return
}

// Defines returns the machine parameters as assembler predefines.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"MEMORY_SIZE": fmt.Sprintf("%d", m.Memory.Len()),
		"STACK_LIMIT": fmt.Sprintf("%d", m.Stack.Limit),
	})
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	var cells []string
	for addr, value := range m.Memory.Data {
		if value != 0 {
			cells = append(cells, fmt.Sprintf("%d:%d", addr, value))
		}
	}

	text += fmt.Sprintf("% 6s: %04x\n", "ip", m.Ip)
	text += fmt.Sprintf("% 6s: %v\n", "halted", m.Halted)
	text += fmt.Sprintf("% 6s: %v\n", "stack", m.Stack.Data)
	text += fmt.Sprintf("% 6s: %v\n", "call", m.CallStack.Data)
	text += fmt.Sprintf("% 6s: [%v]\n", "memory", strings.Join(cells, " "))
	text += fmt.Sprintf("% 6s: %v\n", "output", m.Output)

	return
}

// Run executes until the program halts or faults.
// Calling Run on a halted machine returns the fault that halted it.
func (m *Machine) Run() (err error) {
	for done := false; !done; {
		done, err = m.Tick()
	}

	return
}

// Tick executes a single instruction.
// done is set once the machine has halted; err is the fault, if any.
func (m *Machine) Tick() (done bool, err error) {
	if m.Halted {
		done = true
		err = m.Fault
		return
	}

	if m.Ip >= len(m.Code) {
		if m.Verbose {
			log.Printf("%04x: end of program", m.Ip)
		}
		m.Halted = true
		done = true
		return
	}

	ins, next, err := Decode(m.Code, m.Ip)
	if err == nil {
		if m.Verbose {
			log.Printf("%04x: %v", m.Ip, ins)
		}
		done, err = m.execute(ins, next)
	}

	if err != nil {
		err = &ErrFault{Ip: m.Ip, Op: Op(m.Code[m.Ip]), Err: err}
		if m.Verbose {
			log.Printf("%04x: %v", m.Ip, err)
		}
		m.Fault = err
		m.Halted = true
		done = true
	}

	return
}

// need checks that the operand stack holds at least count values.
func (m *Machine) need(count int) (err error) {
	if m.Stack.Len() < count {
		err = ErrStackEmpty
	}
	return
}

// push checks for room, then pushes.
func (m *Machine) push(value int32) (err error) {
	if m.Stack.Full() {
		err = ErrStackFull
		return
	}
	m.Stack.Push(value)
	return
}

// binary replaces the top two values, a on top of b, with op(a, b).
func (m *Machine) binary(op func(a, b int32) (int32, error)) (err error) {
	err = m.need(2)
	if err != nil {
		return
	}

	data := m.Stack.Data
	a := data[len(data)-1]
	b := data[len(data)-2]
	value, err := op(a, b)
	if err != nil {
		return
	}

	m.Stack.Data = append(data[:len(data)-2], value)
	return
}

// branch checks a code offset operand.
func branch(target int32) (ip int, err error) {
	if target < 0 {
		err = ErrIpInvalid
		return
	}
	ip = int(target)
	return
}

func boolean(cond bool) int32 {
	if cond {
		return 1
	}
	return 0
}

// execute runs one decoded instruction. next is the offset following it.
// On error the machine state is left as it was before the instruction.
func (m *Machine) execute(ins Instruction, next int) (halt bool, err error) {
	arg := ins.Operand

	switch ins.Op {
	case OP_PUSH:
		err = m.push(arg)
	case OP_STORE:
		err = m.need(1)
		if err != nil {
			return
		}
		value, _ := m.Stack.Peek()
		err = m.Memory.Store(arg, value)
		if err != nil {
			return
		}
		m.Stack.Pop()
	case OP_LOAD:
		var value int32
		value, err = m.Memory.Load(arg)
		if err != nil {
			return
		}
		err = m.push(value)
	case OP_ADD:
		err = m.binary(func(a, b int32) (int32, error) { return b + a, nil })
	case OP_SUB:
		err = m.binary(func(a, b int32) (int32, error) { return b - a, nil })
	case OP_MUL:
		err = m.binary(func(a, b int32) (int32, error) { return a * b, nil })
	case OP_MOD:
		err = m.binary(func(a, b int32) (int32, error) {
			if a == 0 {
				return 0, ErrDivideByZero
			}
			return b % a, nil
		})
	case OP_EQ:
		err = m.binary(func(a, b int32) (int32, error) { return boolean(a == b), nil })
	case OP_NEQ:
		err = m.binary(func(a, b int32) (int32, error) { return boolean(a != b), nil })
	case OP_JUMP:
		next, err = branch(arg)
	case OP_JUMPIF, OP_JUMPIFNOT:
		err = m.need(1)
		if err != nil {
			return
		}
		cond, _ := m.Stack.Peek()
		taken := cond > 0
		if ins.Op == OP_JUMPIFNOT {
			taken = cond <= 0
		}
		if taken {
			next, err = branch(arg)
			if err != nil {
				return
			}
		}
		m.Stack.Pop()
	case OP_CALL:
		var target int
		target, err = branch(arg)
		if err != nil {
			return
		}
		if m.CallStack.Full() {
			err = ErrStackFull
			return
		}
		m.CallStack.Push(next)
		next = target
	case OP_RETURN:
		var ok bool
		next, ok = m.CallStack.Pop()
		if !ok {
			err = ErrCallStackEmpty
			return
		}
	case OP_PRINT:
		err = m.need(1)
		if err != nil {
			return
		}
		value, _ := m.Stack.Peek()
		if m.Sink != nil {
			err = m.Sink.Send(value)
			if err != nil {
				return
			}
		}
		m.Stack.Pop()
		m.Output = append(m.Output, value)
	case OP_HALT:
		halt = true
		m.Halted = true
	default:
		err = ErrOpcode(ins.Op)
		return
	}

	if err != nil {
		return
	}

	m.Ip = next
	m.Ticks++

	return
}
