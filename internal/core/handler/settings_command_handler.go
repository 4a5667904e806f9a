package handler

import (
	"encoding/json"
	"fmt"

	"rops/internal/core"
)

type SettingsCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideSettingsCommandHandler(configRepository core.ConfigRepository) SettingsCommandHandler {
	return SettingsCommandHandler{configRepository: configRepository}
}

// Handle prints the resolved settings as JSON, after defaults and validation.
// Useful to debug which configuration a run would actually use.
func (h *SettingsCommandHandler) Handle() error {
	settings, err := h.configRepository.LoadSettings()
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %v", err)
	}

	fmt.Println(string(encoded))
	return nil
}
