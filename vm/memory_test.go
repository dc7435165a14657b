package vm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)
	assert.Equal(4, mem.Len())

	for addr := range int32(4) {
		value, err := mem.Load(addr)
		assert.NoError(err)
		assert.Equal(int32(0), value)
	}

	assert.NoError(mem.Store(3, -7))
	value, err := mem.Load(3)
	assert.NoError(err)
	assert.Equal(int32(-7), value)

	mem.Reset()
	value, err = mem.Load(3)
	assert.NoError(err)
	assert.Equal(int32(0), value)
}

func TestMemory_Range(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(4)

	for _, addr := range []int32{-1, 4, 5, -2147483648, 2147483647} {
		_, err := mem.Load(addr)
		var mr ErrMemoryRange
		assert.True(errors.As(err, &mr), addr)
		assert.Equal(ErrMemoryRange{Addr: addr, Size: 4}, mr)

		err = mem.Store(addr, 1)
		assert.Equal(ErrMemoryRange{Addr: addr, Size: 4}, err)
	}

	// Neighbours untouched.
	assert.Equal([]int32{0, 0, 0, 0}, mem.Data)

	empty := NewMemory(0)
	_, err := empty.Load(0)
	assert.Error(err)
}
