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

// Package limiter paces the emulation so that frames are produced at the
// refresh rate of the console.
package limiter

import (
	"time"
)

// FpsLimiter blocks in Wait() until the next frame is due.
type FpsLimiter struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	// when the next frame is due
	next time.Time
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the number of frames per second.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
	lim.next = time.Time{}
}

// Wait until the next frame is due. If the caller has fallen more than a
// frame behind then the schedule is restarted rather than running quickly
// to catch up.
func (lim *FpsLimiter) Wait() {
	now := time.Now()
	if lim.next.IsZero() || now.Sub(lim.next) > lim.secondsPerFrame {
		lim.next = now.Add(lim.secondsPerFrame)
		return
	}
	time.Sleep(lim.next.Sub(now))
	lim.next = lim.next.Add(lim.secondsPerFrame)
}

// HasWaited returns true if the next frame is due. It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	now := time.Now()
	if now.Before(lim.next) {
		return false
	}
	lim.next = now.Add(lim.secondsPerFrame)
	return true
}
