// Package editor opens a file with the OS default handler so the operator
// can edit it in whatever editor the desktop associates with .txt files.
package editor

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the platform default handler for path and returns once the
// launch succeeds. The handler itself usually returns immediately, so the
// caller is responsible for waiting until the operator confirms the edit is
// done before reading the file back.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		// Empty title argument so paths with spaces are not mistaken for one.
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open %s in the default editor: %w", path, err)
	}
	return nil
}
