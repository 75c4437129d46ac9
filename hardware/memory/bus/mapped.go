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

import (
	"fmt"

	"github.com/whiskers-emu/whiskers/logger"
)

// Mapped is a composite bus. See the package documentation for the order in
// which mappings are consulted.
type Mapped struct {
	label string

	priority []*arrayMapping
	children []Bus
	reads    []readMapping
	writes   []writeMapping

	unmapped uint8

	// if not nil, writes that are not claimed by any mapping are logged
	missPerm logger.Permission
}

// NewMapped is the preferred method of initialisation for the Mapped type.
// The label is used when logging.
func NewMapped(label string) *Mapped {
	return &Mapped{
		label: label,
	}
}

func (m *Mapped) String() string {
	return fmt.Sprintf("%s: %d overlays, %d buses, %d read, %d write mappings",
		m.label, len(m.priority), len(m.children), len(m.reads), len(m.writes))
}

// SetUnmappedValue sets the value returned by reads that are not claimed by
// any mapping.
func (m *Mapped) SetUnmappedValue(v uint8) {
	m.unmapped = v
}

// UnmappedValue returns the value returned by unclaimed reads.
func (m *Mapped) UnmappedValue() uint8 {
	return m.unmapped
}

// LogMisses causes writes that are not claimed by any mapping to be logged.
// A nil argument turns logging off.
func (m *Mapped) LogMisses(perm logger.Permission) {
	m.missPerm = perm
}

// Read implements the Bus interface.
func (m *Mapped) Read(address uint16) uint8 {
	for _, p := range m.priority {
		if p.claims(address) {
			return p.read(address)
		}
	}

	for _, c := range m.children {
		if c.MapsRead(address) {
			return c.Read(address)
		}
	}

	for _, r := range m.reads {
		if r.claims(address) {
			return r.read(address)
		}
	}

	return m.unmapped
}

// Write implements the Bus interface.
func (m *Mapped) Write(address uint16, data uint8) {
	for _, c := range m.children {
		if c.MapsWrite(address) {
			c.Write(address, data)
			return
		}
	}

	for _, w := range m.writes {
		if w.claims(address) {
			w.write(address, data)
			return
		}
	}

	if m.missPerm != nil {
		logger.Logf(m.missPerm, "bus", "%s: unclaimed write %#04x = %#02x", m.label, address, data)
	}
}

// MapsRead implements the Bus interface. A Mapped bus answers every address
// because the unmapped value is itself an answer.
func (m *Mapped) MapsRead(_ uint16) bool {
	return true
}

// MapsWrite implements the Bus interface.
func (m *Mapped) MapsWrite(_ uint16) bool {
	return true
}

// MapArray maps the byte slice for reading and writing at the start address.
// The mapping covers size bytes, wrapping around the slice if size is larger
// than the length of the slice.
func (m *Mapped) MapArray(source []uint8, start uint16, size int) {
	a := &arrayMapping{
		start:  start,
		size:   size,
		source: source,
	}
	m.reads = append(m.reads, a)
	m.writes = append(m.writes, a)
}

// MapRegister maps a single address to a read function and/or a write
// function. Either function can be nil, in which case the address is not
// claimed for that direction.
func (m *Mapped) MapRegister(address uint16, read func() uint8, write func(uint8)) {
	if read != nil {
		m.reads = append(m.reads, &registerReader{address: address, fn: read})
	}
	if write != nil {
		m.writes = append(m.writes, &registerWriter{address: address, fn: write})
	}
}

// MapBus adds a child bus. Child buses are consulted in the order they were
// added.
func (m *Mapped) MapBus(child Bus) {
	m.children = append(m.children, child)
}

// PriorityMap overlays the byte slice at the start address. Overlays are
// consulted before any other mapping and only answer reads.
func (m *Mapped) PriorityMap(source []uint8, start uint16) {
	m.priority = append(m.priority, &arrayMapping{
		start:  start,
		size:   len(source),
		source: source,
	})
}

// UnmapArray removes all overlays and flat mappings backed by the byte slice.
func (m *Mapped) UnmapArray(source []uint8) {
	p := m.priority[:0]
	for _, a := range m.priority {
		if !a.sameSource(source) {
			p = append(p, a)
		}
	}
	m.priority = p

	r := m.reads[:0]
	for _, a := range m.reads {
		if am, ok := a.(*arrayMapping); ok && am.sameSource(source) {
			continue
		}
		r = append(r, a)
	}
	m.reads = r

	w := m.writes[:0]
	for _, a := range m.writes {
		if am, ok := a.(*arrayMapping); ok && am.sameSource(source) {
			continue
		}
		w = append(w, a)
	}
	m.writes = w
}

// UnmapBus removes the child bus.
func (m *Mapped) UnmapBus(child Bus) {
	for i := range m.children {
		if m.children[i] == child {
			m.children = append(m.children[:i], m.children[i+1:]...)
			return
		}
	}
}

// UnmapAllBuses removes every child bus. Used when a cartridge is swapped.
func (m *Mapped) UnmapAllBuses() {
	m.children = m.children[:0]
}

// IsOverlaid returns true if a priority overlay claims the address.
func (m *Mapped) IsOverlaid(address uint16) bool {
	for _, p := range m.priority {
		if p.claims(address) {
			return true
		}
	}
	return false
}
