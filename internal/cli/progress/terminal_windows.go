//go:build windows

package progress

import (
	"os"

	"golang.org/x/sys/windows"
)

// initTerminal enables Virtual Terminal Processing so ANSI escape sequences
// work on Windows consoles. Returns false when the console refuses.
func initTerminal() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return false
	}

	const enableVirtualTerminalProcessing = 0x0004
	if err := windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing); err != nil {
		return false
	}

	return true
}
