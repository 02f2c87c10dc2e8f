// Package clipboard provides a best-effort clipboard sink for the CLI.
// Callers should treat failures as non-fatal: headless machines and CI
// environments routinely have no clipboard at all.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var ErrUnavailable = errors.New("no clipboard tool available")

// Copy writes text to the system clipboard by piping it into the platform's
// clipboard tool.
func Copy(text string) error {
	for _, candidate := range candidates() {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			continue
		}
		cmd := exec.Command(candidate[0], candidate[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("clipboard copy via %s: %w", candidate[0], err)
		}
		return nil
	}
	return ErrUnavailable
}

// candidates lists clipboard commands in preference order for the current
// platform.
func candidates() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	}
}
