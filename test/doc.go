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

// Package test contains helper functions to remove common boilerplate from
// the project's tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the
// test to continue. The Demand*() functions report with t.Fatalf() and stop
// the test immediately. The latter should be used when continuing the test
// would make no sense, for example after failing to load a cartridge image.
//
// ExpectSuccess() and ExpectFailure() interpret bool and error values. A nil
// value is considered a success, matching the usual Go convention for error
// returns.
//
// RingWriter and CappedWriter implement io.Writer and are useful for
// capturing log output.
package test
