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

// Package clocks defines the constant values that define the speed of the
// main clock and the refresh rate of each console.
//
// Values taken from:
// https://gbdev.io/pandocs/Specifications.html
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

// Clock speeds in MHz.
const (
	DMG = 4.194304
	NES = 1.789773
)

// Refresh rates in Hz.
const (
	DMGRefresh = 59.7275
	NESRefresh = 60.0988
)

// Number of video dots for each CPU cycle.
const (
	DMGDotsPerCycle = 2
	NESDotsPerCycle = 3
)
