package handler

import (
	"fmt"
	"strings"

	"rops/internal/cli/output"
	"rops/internal/core"
	"rops/internal/ports"
)

type TokenCommandHandler struct {
	keyring  ports.Keyring
	terminal ports.TerminalInput
}

func ProvideTokenCommandHandler(
	keyring ports.Keyring,
	terminal ports.TerminalInput,
) TokenCommandHandler {
	return TokenCommandHandler{keyring: keyring, terminal: terminal}
}

// HandleSet stores a GitHub token in the OS keyring. The token is prompted
// without echo; piping one in is rejected to keep it out of shell history.
func (h *TokenCommandHandler) HandleSet() error {
	if !h.terminal.IsTerminal() {
		return fmt.Errorf("refusing to read a token from a non-interactive stdin")
	}

	token, err := h.terminal.ReadPassword("GitHub token: ")
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is empty")
	}

	if err := h.keyring.SetKey(core.GitHubTokenKeyName, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %v", err)
	}
	output.PrintSuccess("token stored in the OS keyring")
	return nil
}

// HandleShow prints whether a token is configured and a masked preview,
// never the full value.
func (h *TokenCommandHandler) HandleShow() error {
	hasKey, err := h.keyring.HasKey(core.GitHubTokenKeyName)
	if err != nil {
		return fmt.Errorf("failed to query keyring: %v", err)
	}
	if !hasKey {
		output.PrintInfo("no token stored; set one with 'rops token set'")
		return nil
	}

	token, err := h.keyring.GetKey(core.GitHubTokenKeyName)
	if err != nil {
		return fmt.Errorf("failed to read token from keyring: %v", err)
	}

	output.PrintSuccess(fmt.Sprintf("token stored: %s", maskToken(token)))
	return nil
}

func (h *TokenCommandHandler) HandleClear() error {
	hasKey, err := h.keyring.HasKey(core.GitHubTokenKeyName)
	if err != nil {
		return fmt.Errorf("failed to query keyring: %v", err)
	}
	if !hasKey {
		output.PrintInfo("no token stored")
		return nil
	}

	if err := h.keyring.DeleteKey(core.GitHubTokenKeyName); err != nil {
		return fmt.Errorf("failed to delete token from keyring: %v", err)
	}
	output.PrintSuccess("token removed from the OS keyring")
	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", 4) + token[len(token)-4:]
}
