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

package curated_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/whiskers-emu/whiskers/curated"
	"github.com/whiskers-emu/whiskers/test"
)

const testPattern = "cartridge: %v"
const innerPattern = "unsupported mapper type (%#02x)"

func TestIs(t *testing.T) {
	e := curated.Errorf(innerPattern, 0x20)
	test.ExpectSuccess(t, curated.Is(e, innerPattern))
	test.ExpectFailure(t, curated.Is(e, testPattern))
	test.ExpectEquality(t, e.Error(), "unsupported mapper type (0x20)")

	f := curated.Errorf(testPattern, e)
	test.ExpectFailure(t, curated.Is(f, innerPattern))
	test.ExpectSuccess(t, curated.Has(f, innerPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectEquality(t, f.Error(), "cartridge: unsupported mapper type (0x20)")
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("cartridge: %v", "truncated")
	f := curated.Errorf("cartridge: %v", e)
	test.ExpectEquality(t, f.Error(), "cartridge: truncated")
}

func TestIsAny(t *testing.T) {
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("curated")))

	// wrapped by the standard library
	w := fmt.Errorf("host: %w", curated.Errorf("curated"))
	test.ExpectSuccess(t, curated.IsAny(w))
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf("loading: %v", sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}
