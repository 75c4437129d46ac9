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

package gameboy

import (
	"strings"

	"github.com/whiskers-emu/whiskers/logger"
)

// serial implements the serial port as a console. there is never a link
// partner so transfers complete immediately. bytes are collected into lines
// which are logged as they are completed
type serial struct {
	data    uint8
	control uint8

	line   strings.Builder
	output strings.Builder
}

func (s *serial) reset() {
	s.data = 0xff
	s.control = 0
	s.line.Reset()
	s.output.Reset()
}

func (s *serial) readData() uint8 {
	return s.data
}

func (s *serial) writeData(v uint8) {
	s.data = v
}

func (s *serial) readControl() uint8 {
	return s.control | 0x7e
}

// writeControl returns true if a transfer has completed and the serial
// interrupt should be requested
func (s *serial) writeControl(v uint8) bool {
	s.control = v & 0x81
	if v != 0x81 {
		return false
	}

	s.output.WriteByte(s.data)
	if s.data == '\n' {
		logger.Log(logger.Allow, "serial", s.line.String())
		s.line.Reset()
	} else {
		s.line.WriteByte(s.data)
	}

	// nothing is shifted in from the link partner
	s.data = 0xff
	s.control &^= 0x80

	return true
}
