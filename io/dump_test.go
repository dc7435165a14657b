package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteBytes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		data   []byte
		output string
	}){
		{nil, "[]"},
		{[]byte{7}, "[7]"},
		{[]byte{0, 0, 0, 0, 4}, "[0, 0, 0, 0, 4]"},
		{[]byte{0, 255, 255, 255, 255, 6}, "[0, 255, 255, 255, 255, 6]"},
	}

	for _, entry := range table {
		out := &bytes.Buffer{}
		err := WriteBytes(out, entry.data)
		assert.NoError(err)
		assert.Equal(entry.output, out.String())
	}

	err := WriteBytes(brokenWriter{}, []byte{1})
	assert.ErrorIs(err, errBroken)
}
