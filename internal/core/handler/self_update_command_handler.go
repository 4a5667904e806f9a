package handler

import (
	"context"
	"fmt"

	"rops/internal/cli/output"
	"rops/internal/core"
	"rops/internal/core/domain"
)

type SelfUpdateCommandHandler struct {
	updater   *core.SelfUpdater
	installed domain.InstalledVersion
}

func ProvideSelfUpdateCommandHandler(
	updater *core.SelfUpdater,
	installed domain.InstalledVersion,
) SelfUpdateCommandHandler {
	return SelfUpdateCommandHandler{updater: updater, installed: installed}
}

// HandleCheck reports whether a newer release exists without touching the
// binary.
func (h *SelfUpdateCommandHandler) HandleCheck(ctx context.Context) error {
	latest, newer, err := h.updater.Check(ctx)
	if err != nil {
		return err
	}

	if !newer {
		output.PrintSuccess(fmt.Sprintf("rops %s is up to date", h.installed.Version))
		return nil
	}

	output.PrintInfo(fmt.Sprintf("rops %s is available (installed: %s)", latest.Tag, h.installed.Version))
	output.PrintStep("run 'rops self-update' to install it")
	return nil
}

// Handle replaces the installed binary with the requested release, or the
// latest one when tag is empty.
func (h *SelfUpdateCommandHandler) Handle(ctx context.Context, tag string) error {
	release, updated, err := h.updater.Update(ctx, tag)
	if err != nil {
		return err
	}

	if !updated {
		output.PrintSuccess(fmt.Sprintf("rops %s is up to date", h.installed.Version))
		return nil
	}

	output.PrintSuccess(fmt.Sprintf("staged rops %s, it takes effect on the next run", release.Tag))
	return nil
}
