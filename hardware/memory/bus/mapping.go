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

package bus

import "fmt"

type readMapping interface {
	claims(address uint16) bool
	read(address uint16) uint8
}

type writeMapping interface {
	claims(address uint16) bool
	write(address uint16, data uint8)
}

// arrayMapping answers an address range from a byte slice. addresses past
// the end of the slice wrap around.
type arrayMapping struct {
	start  uint16
	size   int
	source []uint8
}

func (m *arrayMapping) String() string {
	return fmt.Sprintf("array %#04x-%#04x (%d bytes)", m.start, int(m.start)+m.size-1, len(m.source))
}

func (m *arrayMapping) claims(address uint16) bool {
	return address >= m.start && int(address) < int(m.start)+m.size
}

func (m *arrayMapping) read(address uint16) uint8 {
	return m.source[int(address-m.start)%len(m.source)]
}

func (m *arrayMapping) write(address uint16, data uint8) {
	m.source[int(address-m.start)%len(m.source)] = data
}

// sameSource returns true if the mapping is backed by exactly the supplied
// slice. slices are identified by their first element and length.
func (m *arrayMapping) sameSource(source []uint8) bool {
	if len(m.source) == 0 || len(source) == 0 {
		return false
	}
	return &m.source[0] == &source[0] && len(m.source) == len(source)
}

// registerReader answers a single address with a function.
type registerReader struct {
	address uint16
	fn      func() uint8
}

func (m *registerReader) claims(address uint16) bool {
	return address == m.address
}

func (m *registerReader) read(_ uint16) uint8 {
	return m.fn()
}

// registerWriter receives writes to a single address.
type registerWriter struct {
	address uint16
	fn      func(uint8)
}

func (m *registerWriter) claims(address uint16) bool {
	return address == m.address
}

func (m *registerWriter) write(_ uint16, data uint8) {
	m.fn(data)
}
