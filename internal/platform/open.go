package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// LinuxFileManagers are tried in order when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// OpenDirectory shows dir in the system file manager
func OpenDirectory(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absPath)
	}

	candidates, err := openCommands(runtime.GOOS, absPath)
	if err != nil {
		return err
	}

	var lastErr error
	for _, args := range candidates {
		if _, err := exec.LookPath(args[0]); err != nil {
			lastErr = err
			continue
		}
		if err := exec.Command(args[0], args[1:]...).Start(); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("no suitable file manager found: %w", lastErr)
}

// openCommands lists the command lines to try for goos, most preferred first
func openCommands(goos, dir string) ([][]string, error) {
	switch goos {
	case OSDarwin:
		return [][]string{{OpenCommand, dir}}, nil
	case OSWindows:
		return [][]string{{ExplorerCommand, dir}}, nil
	case OSLinux:
		// File selection is not standardized on Linux
		cmds := [][]string{{XDGOpenCommand, dir}}
		for _, fm := range LinuxFileManagers {
			cmds = append(cmds, []string{fm, dir})
		}
		return cmds, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
