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

// Package screenshot saves frames presented by a console as BMP files.
package screenshot

import (
	"image"
	"image/color"
	"io"
	"os"

	"github.com/whiskers-emu/whiskers/curated"
	"golang.org/x/image/bmp"
)

// Image converts an ARGB frame to an image. The alpha channel of the frame
// is ignored.
func Image(frame []uint32, width int, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			i := y*width + x
			if i >= len(frame) {
				return img
			}
			p := frame[i]
			img.SetRGBA(x, y, color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xff})
		}
	}
	return img
}

// Encode writes the frame to w as a BMP image.
func Encode(w io.Writer, frame []uint32, width int, height int) error {
	err := bmp.Encode(w, Image(frame, width, height))
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}

// Save writes the frame to the named file as a BMP image.
func Save(filename string, frame []uint32, width int, height int) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	err = Encode(f, frame, width, height)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}
