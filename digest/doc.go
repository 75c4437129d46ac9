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

// Package digest produces a chained SHA-1 hash of the frames presented by a
// console. The hash can be used to compare the output of subsequent
// emulation runs. If a new hash differs from a previously recorded value then
// something has changed. This is the basis of the end-to-end tests and the
// DIGEST mode.
//
// Note that the use of SHA-1 is fine for this application because this is
// not a cryptographic task.
package digest
