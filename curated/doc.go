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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are used for errors that
// are expected to occur during normal operation, for example a cartridge
// image with a bad header.
//
// Curated errors are created with the Errorf() function. The formatting
// pattern is stored alongside the values and is used to identify the error
// later:
//
//	const BadMagic = "ines: bad magic (%q)"
//
//	err := curated.Errorf(BadMagic, data[:4])
//	if curated.Is(err, BadMagic) {
//		...
//	}
//
// The Has() function is similar to Is() but checks the entire chain of
// wrapped curated errors:
//
//	f := curated.Errorf("cartridge: %v", err)
//	curated.Has(f, BadMagic) // true
//	curated.Is(f, BadMagic)  // false
//
// The IsAny() function answers whether the error was created by Errorf()
// at all. Errors that are not curated can be thought of as unexpected.
//
// The Error() implementation normalises the message so that the chain does
// not contain duplicate adjacent parts. Parts of a chain are separated by the
// sub-string ': '. This means that wrapping a "cartridge: ..." error in
// another "cartridge: %v" pattern does not stutter.
package curated
