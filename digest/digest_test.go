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

package digest_test

import (
	"testing"

	"github.com/whiskers-emu/whiskers/digest"
	"github.com/whiskers-emu/whiskers/test"
)

func TestChaining(t *testing.T) {
	frame := make([]uint32, 4*3)

	a := digest.NewVideo()
	test.DemandImplements[digest.Digest](t, a)
	empty := a.Hash()

	a.Frame(frame, 4, 3)
	first := a.Hash()
	test.ExpectInequality(t, first, empty)

	// the same frame again produces a different hash
	a.Frame(frame, 4, 3)
	test.ExpectInequality(t, a.Hash(), first)
	test.ExpectEquality(t, a.Frames(), 2)

	// a second digest with the same frames agrees
	b := digest.NewVideo()
	b.Frame(frame, 4, 3)
	b.Frame(frame, 4, 3)
	test.ExpectEquality(t, b.Hash(), a.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Frames(), 0)
}

func TestAlphaIgnored(t *testing.T) {
	a := digest.NewVideo()
	a.Frame([]uint32{0xff123456}, 1, 1)
	b := digest.NewVideo()
	b.Frame([]uint32{0x00123456}, 1, 1)
	test.ExpectEquality(t, a.Hash(), b.Hash())

	c := digest.NewVideo()
	c.Frame([]uint32{0x00123457}, 1, 1)
	test.ExpectInequality(t, c.Hash(), a.Hash())
}
