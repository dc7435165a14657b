package io

import (
	"io"
	"strconv"
)

// Tape writes printed values to an io.Writer, one decimal value per line.
type Tape struct {
	Output io.Writer // Destination of the values.
	Limit  int       // Maximum values to write. Zero is unlimited.
	Count  int       // Values written so far.

	buf []byte
}

var _ Sink = (*Tape)(nil)

// Send writes value followed by a newline.
func (tc *Tape) Send(value int32) (err error) {
	if tc.Output == nil {
		err = ErrTapeMissing
		return
	}

	if tc.Limit > 0 && tc.Count >= tc.Limit {
		err = ErrSinkFull
		return
	}

	tc.buf = strconv.AppendInt(tc.buf[:0], int64(value), 10)
	tc.buf = append(tc.buf, '\n')
	_, err = tc.Output.Write(tc.buf)
	if err != nil {
		return
	}

	tc.Count++
	return
}

// Rewind clears the count of values written.
func (tc *Tape) Rewind() {
	tc.Count = 0
}
