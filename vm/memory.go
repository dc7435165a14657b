package vm

const (
	MEMORY_SIZE = 256 // Default number of memory cells.
)

// Memory is a fixed size, bounds checked array of cells.
type Memory struct {
	Data []int32
}

// NewMemory creates a zero filled memory of size cells.
func NewMemory(size int) (mem *Memory) {
	mem = &Memory{
		Data: make([]int32, size),
	}
	return
}

// Len returns the number of cells.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

func (mem *Memory) check(addr int32) (err error) {
	if addr < 0 || int(addr) >= len(mem.Data) {
		err = ErrMemoryRange{Addr: addr, Size: len(mem.Data)}
	}
	return
}

// Load reads the cell at addr.
func (mem *Memory) Load(addr int32) (value int32, err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	value = mem.Data[addr]
	return
}

// Store writes value to the cell at addr.
func (mem *Memory) Store(addr int32, value int32) (err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	mem.Data[addr] = value
	return
}

// Reset zeros all cells.
func (mem *Memory) Reset() {
	clear(mem.Data)
}
