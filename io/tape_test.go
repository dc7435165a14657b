package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenWriter struct{}

var errBroken = errors.New("broken")

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	for _, value := range []int32{0, 1, -1, 10946, 2147483647, -2147483648} {
		assert.NoError(tape.Send(value))
	}

	assert.Equal("0\n1\n-1\n10946\n2147483647\n-2147483648\n", out.String())
	assert.Equal(6, tape.Count)
}

func TestTape_Missing(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.ErrorIs(tape.Send(1), ErrTapeMissing)
	assert.Equal(0, tape.Count)
}

func TestTape_Limit(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out, Limit: 2}

	assert.NoError(tape.Send(7))
	assert.NoError(tape.Send(8))
	assert.ErrorIs(tape.Send(9), ErrSinkFull)
	assert.Equal("7\n8\n", out.String())

	tape.Rewind()
	assert.NoError(tape.Send(9))
	assert.Equal("7\n8\n9\n", out.String())
}

func TestTape_WriteError(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Output: brokenWriter{}}
	assert.ErrorIs(tape.Send(1), errBroken)
	assert.Equal(0, tape.Count)
}
