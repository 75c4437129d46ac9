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

// Whiskers emulates two 8-bit consoles: the DMG handheld and the 6502 based
// home console. The console is chosen from the cartridge file.
//
// The program has four modes. RUN is the default and opens a window.
// HEADLESS runs for a number of frames without a window. DIGEST prints the
// chained digest of the frames. VERSION prints the version. Each mode takes
// its own flags, listed with -help:
//
//	whiskers [RUN] [-scale 3] [-bios file] [-script file.lua] cartridge
//	whiskers HEADLESS [-frames 60] [-screenshot file.bmp] [-term] cartridge
//	whiskers DIGEST [-frames 60] cartridge
//	whiskers VERSION
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/whiskers-emu/whiskers/logger"
	"github.com/whiskers-emu/whiskers/modalflag"
	"github.com/whiskers-emu/whiskers/statsview"
	"github.com/whiskers-emu/whiskers/version"
)

// the values used with os.Exit()
const (
	exitOK    = 0
	exitArgs  = 10
	exitError = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "HEADLESS", "DIGEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "HEADLESS":
		err = headless(md, output)
	case "DIGEST":
		err = digestMode(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitError
	}

	return exitOK
}

// ambient are the flags shared by the modes that run a console.
type ambient struct {
	bios      *string
	script    *string
	saveDir   *string
	log       *bool
	statsview *bool
}

func addAmbient(md *modalflag.Modes) ambient {
	a := ambient{
		bios:    md.AddString("bios", "", "boot ROM file (DMG only)"),
		script:  md.AddString("script", "", "Lua script to run alongside the emulation"),
		saveDir: md.AddString("save", "", "directory for battery RAM files"),
		log:     md.AddBool("log", false, "echo log to stdout"),
	}
	if statsview.Available() {
		a.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return a
}

// apply the ambient flags that are not specific to a session.
func (a ambient) apply(output io.Writer) {
	if *a.log {
		logger.SetEcho(output)
	}
	if a.statsview != nil && *a.statsview {
		statsview.Launch(output)
	}
}

func (a ambient) options() sessionOptions {
	return sessionOptions{
		bios:    *a.bios,
		script:  *a.script,
		saveDir: *a.saveDir,
	}
}

// cartridgeArg returns the single cartridge argument.
func cartridgeArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("cartridge required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// interrupted returns a channel that receives on ctrl-c.
func interrupted() (<-chan os.Signal, func()) {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	return intChan, func() {
		signal.Stop(intChan)
	}
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
