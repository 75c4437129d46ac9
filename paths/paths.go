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

package paths

import (
	"os"
	"path/filepath"

	"github.com/whiskers-emu/whiskers/curated"
)

const baseResourcePath = ".whiskers"

// ResourcePath returns the path to the file in the resource sub-directory.
// The sub-directory is created if necessary. Either argument can be the
// empty string.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	pth := filepath.Join(base, subPth)
	err = os.MkdirAll(pth, 0o700)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, baseResourcePath[1:]), nil
}

// SaveFile returns the path of the battery-RAM file for the named
// cartridge. If dir is not empty then it is used instead of the "saves"
// resource directory.
func SaveFile(dir string, name string) (string, error) {
	name = filepath.Base(name) + ".sav"
	if dir == "" {
		return ResourcePath("saves", name)
	}
	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return filepath.Join(dir, name), nil
}
