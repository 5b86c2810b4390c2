// Package tmux opens commands in new tmux windows via exec. Commands target
// the current session automatically.
package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// InSession reports whether the process runs inside tmux (TMUX env set).
func InSession() bool {
	return os.Getenv("TMUX") != ""
}

// NewWindow runs argv in a new background window named name and returns the
// window ID (e.g. @3). -d keeps focus on the current window.
func NewWindow(name string, argv ...string) (windowID string, err error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("tmux new-window: empty command")
	}
	args := []string{"new-window", "-d", "-P", "-F", "#{window_id}"}
	if name != "" {
		args = append(args, "-n", name)
	}
	args = append(args, "--")
	args = append(args, argv...)
	cmd := exec.Command("tmux", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tmux new-window: %w: %s", err, strings.TrimSpace(out.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
