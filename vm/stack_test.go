package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int32]{}
	assert.True(s.Empty())
	assert.False(s.Full())

	s.Push(0x12345678)
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(int32(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int32]{}
	s.Push(0x12345678)
	s.Push(-2)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(int32(-2), val)
	assert.Equal(1, s.Len())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(int32(0x12345678), val)
	assert.Equal(0, s.Len())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int32]{}
	s.Push(1)
	s.Push(2)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(int32(2), val)
	assert.Equal(2, s.Len())
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int32]{Limit: 4}
	for i := range 4 {
		assert.False(s.Full())
		s.Push(int32(i))
	}
	assert.True(s.Full())

	// Unbounded
	s = &Stack[int32]{}
	for i := range 1024 {
		s.Push(int32(i))
	}
	assert.False(s.Full())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int32]{}
	s.Push(1)
	s.Push(2)

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Len())

	s.Reset()
	assert.True(s.Empty())
}
