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

package performance

// CalcFPS returns the frames per second achieved for the number of frames
// over the duration in seconds. The accuracy is the percentage of the
// refresh rate that the frame rate represents.
func CalcFPS(refreshRate float64, numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 || refreshRate <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * fps / refreshRate
	return fps, accuracy
}
