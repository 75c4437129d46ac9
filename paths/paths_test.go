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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/whiskers-emu/whiskers/paths"
	"github.com/whiskers-emu/whiskers/test"
)

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".whiskers", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".whiskers", "foo", "bar", "baz"))

	_, err = os.Stat(filepath.Join(".whiskers", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".whiskers", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".whiskers", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".whiskers")
}

func TestSaveFile(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".whiskers", 0o700))

	pth, err := paths.SaveFile("", "TETRIS")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".whiskers", "saves", "TETRIS.sav"))

	pth, err = paths.SaveFile("elsewhere", "game")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join("elsewhere", "game.sav"))
}
