// This file is part of Whiskers.
//
// Whiskers is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Whiskers is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Whiskers.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// RingWriter keeps only the most recent bytes written to it. Useful for
// checking the tail of output that may be of any length, such as the echo of
// a log.
type RingWriter struct {
	size int
	tail []byte
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size is the number of bytes retained.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: size must be positive (%d)", size)
	}
	return &RingWriter{
		size: size,
		tail: make([]byte, 0, size*2),
	}, nil
}

// String returns the retained bytes, oldest first.
func (r *RingWriter) String() string {
	return string(r.tail)
}

// Reset discards everything written so far.
func (r *RingWriter) Reset() {
	r.tail = r.tail[:0]
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	r.tail = append(r.tail, p...)
	if over := len(r.tail) - r.size; over > 0 {
		n := copy(r.tail, r.tail[over:])
		r.tail = r.tail[:n]
	}
	return len(p), nil
}
