package terminal

import (
	"fmt"
	"os"

	"rops/internal/ports"

	"golang.org/x/term"
)

// TerminalInput reads secrets from the controlling terminal.
type TerminalInput struct{}

func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	input, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(input), nil
}

func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var _ ports.TerminalInput = (*TerminalInput)(nil)
