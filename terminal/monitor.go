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

//go:build linux || darwin

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"github.com/whiskers-emu/whiskers/curated"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Monitor reads key presses from the terminal and writes a status line.
type Monitor struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	commands chan Command

	// sig/ack channels to control the signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// width is updated by the signal handler
	mu    sync.Mutex
	width int
}

// NewMonitor puts the input terminal into cbreak mode. CleanUp() must be
// called to restore the terminal.
func NewMonitor(input *os.File, output *os.File) (*Monitor, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf(NotTerminal)
	}

	m := &Monitor{
		input:               input,
		output:              output,
		commands:            make(chan Command, 8),
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	err := termios.Tcgetattr(m.input.Fd(), &m.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	m.cbreakAttr = m.canAttr
	termios.Cfmakecbreak(&m.cbreakAttr)

	err = termios.Tcsetattr(m.input.Fd(), termios.TCIFLUSH, &m.cbreakAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	m.updateGeometry()

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			m.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				m.updateGeometry()
			case <-m.terminateHandlerSig:
				return
			}
		}
	}()

	go m.read()

	return m, nil
}

// CleanUp restores the terminal to canonical mode.
func (m *Monitor) CleanUp() {
	m.terminateHandlerSig <- true
	<-m.terminateHandlerAck
	_ = termios.Tcsetattr(m.input.Fd(), termios.TCIFLUSH, &m.canAttr)
	fmt.Fprintln(m.output)
}

// Commands returns the channel on which key commands are sent.
func (m *Monitor) Commands() <-chan Command {
	return m.commands
}

// Status redraws the status line.
func (m *Monitor) Status(console string, frame int, fps float64, paused bool) {
	m.mu.Lock()
	w := m.width
	m.mu.Unlock()
	fmt.Fprintf(m.output, "\r%s\033[K", StatusLine(console, frame, fps, paused, w))
}

func (m *Monitor) updateGeometry() {
	ws, err := unix.IoctlGetWinsize(int(m.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = int(ws.Col)
}

func (m *Monitor) read() {
	b := make([]byte, 1)
	for {
		n, err := m.input.Read(b)
		if err != nil {
			return
		}
		if n == 0 {
			continue
		}
		if c, ok := Decode(b[0]); ok {
			// drop commands if the emulation is not keeping up
			select {
			case m.commands <- c:
			default:
			}
		}
	}
}
