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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Digest implementations should return a cryptographic hash in response to a
// Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}

const pixelDepth = 3

// Video generates a SHA-1 value of every frame. Each hash includes the hash
// of the previous frame so that the final value depends on every frame seen.
type Video struct {
	digest [sha1.Size]byte
	pixels []uint8
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds the frame to the digest. It has the same signature as the
// function expected by core.Core.OnPresentFrame(). Pixels are ARGB and only
// the colour components are used.
func (dig *Video) Frame(frame []uint32, width int, height int) {
	// room for the chained digest and the frame
	l := len(dig.digest) + width*height*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]uint8, l)
	}

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	for _, p := range frame[:min(len(frame), width*height)] {
		dig.pixels[i] = uint8(p >> 16)
		dig.pixels[i+1] = uint8(p >> 8)
		dig.pixels[i+2] = uint8(p)
		i += pixelDepth
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
