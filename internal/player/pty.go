package player

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size is the terminal size given to the player, in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Process is a running player.
type Process interface {
	// Write sends keystrokes to the player.
	io.Writer
	// Wait blocks until the player exits.
	Wait() error
	Kill() error
	Resize(Size) error
	// Close releases the terminal. It does not stop the process.
	Close() error
}

// Starter spawns player processes. Implementations can be swapped
// (creack/pty, or a fake for tests).
type Starter interface {
	Start(name string, args []string, size Size) (Process, error)
}

// PTYStarter runs the player inside a private pseudo-terminal so its output
// never reaches the terminal the UI draws on.
type PTYStarter struct{}

var _ Starter = PTYStarter{}

func (PTYStarter) Start(name string, args []string, size Size) (Process, error) {
	cmd := exec.Command(name, args...)
	tty, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	p := &ptyProcess{cmd: cmd, tty: tty}
	// The player blocks once the pty buffer fills, so output is drained.
	go func() { _, _ = io.Copy(io.Discard, tty) }()
	return p, nil
}

type ptyProcess struct {
	cmd *exec.Cmd
	tty *os.File
}

func (p *ptyProcess) Write(b []byte) (int, error) {
	return p.tty.Write(b)
}

func (p *ptyProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *ptyProcess) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

func (p *ptyProcess) Resize(size Size) error {
	return pty.Setsize(p.tty, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

func (p *ptyProcess) Close() error {
	return p.tty.Close()
}
