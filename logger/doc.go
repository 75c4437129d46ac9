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

// Package logger is the central logging facility for the emulator. Entries
// are tagged with a short string naming the component that created them and
// consecutive duplicate entries are collapsed into a single entry with a
// repeat count.
//
// The package level functions act on a single central logger, which is the
// logger all emulation components should use:
//
//	logger.Logf(logger.Allow, "MBC1", "bank %d selected", bank)
//
// The Permission argument allows callers to suppress logging in contexts
// where it would be inappropriate. For example, a core running in a
// regression context can satisfy the Permission interface and return false.
//
// Additional loggers can be created with NewLogger(). These are useful for
// testing or for components that want to keep their own history.
package logger
