package io

import (
	"io"
	"strconv"
)

// WriteBytes writes data as a bracketed, comma separated list of
// decimal byte values, such as "[0, 0, 0, 0, 4]".
func WriteBytes(w io.Writer, data []byte) (err error) {
	out := make([]byte, 0, 2+len(data)*5)
	out = append(out, '[')
	for n, b := range data {
		if n > 0 {
			out = append(out, ',', ' ')
		}
		out = strconv.AppendUint(out, uint64(b), 10)
	}
	out = append(out, ']')

	_, err = w.Write(out)
	return
}
