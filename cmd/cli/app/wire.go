//go:build wireinject
// +build wireinject

package app

import (
	"rops/internal/adapters/command_runner"
	"rops/internal/adapters/container_image_repository"
	"rops/internal/adapters/container_orchestrator"
	"rops/internal/adapters/filesystem"
	"rops/internal/adapters/keyring"
	"rops/internal/adapters/release_source"
	"rops/internal/adapters/scm"
	"rops/internal/adapters/terminal"
	"rops/internal/core"
	"rops/internal/core/handler"
	"rops/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	scm.ProvideGitContext,
	wire.Bind(new(ports.Scm), new(*scm.GitContext)),
	container_image_repository.ProvideDockerRepository,
	wire.Bind(new(ports.ContainerImageRepository), new(*container_image_repository.DockerRepository)),
	container_orchestrator.ProvideHelmClient,
	wire.Bind(new(ports.HelmClient), new(*container_orchestrator.HelmClient)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	wire.Bind(new(ports.Keyring), new(*keyring.ZalandoKeyring)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// ClusterAdapter is separate from Adapter because providing it loads the
// kubeconfig, which commands without cluster access must not require.
var ClusterAdapter = wire.NewSet(
	container_orchestrator.ProvideKubernetes,
	wire.Bind(new(ports.Cluster), new(*container_orchestrator.Kubernetes)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileConfigRepository)),
	core.ProvideSettings,
	core.ProvideEnvironmentSelector,
	core.ProvidePlanner,
	core.ProvideReleaseActionRunner,
	wire.Bind(new(core.ActionRunner), new(*core.ReleaseActionRunner)),
	core.ProvideOrchestrator,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		Adapter,
		core.ProvideFileConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileConfigRepository)),
	)
	return &core.FileConfigRepository{}, nil
}

func InjectSettingsCommandHandler() (handler.SettingsCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideSettingsCommandHandler,
	)
	return handler.SettingsCommandHandler{}, nil
}

func InjectPlanCommandHandler() (handler.PlanCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePlanCommandHandler,
	)
	return handler.PlanCommandHandler{}, nil
}

func InjectBuildCommandHandler() (handler.BuildCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideBuildCommandHandler,
	)
	return handler.BuildCommandHandler{}, nil
}

func InjectPushCommandHandler() (handler.PushCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePushCommandHandler,
	)
	return handler.PushCommandHandler{}, nil
}

func InjectDeployCommandHandler() (handler.DeployCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		ClusterAdapter,
		core.ProvideEnvironmentEnsurer,
		handler.ProvideDeployCommandHandler,
	)
	return handler.DeployCommandHandler{}, nil
}

func InjectUpdateCommandHandler() (handler.UpdateCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		ClusterAdapter,
		core.ProvideEnvironmentEnsurer,
		handler.ProvideUpdateCommandHandler,
	)
	return handler.UpdateCommandHandler{}, nil
}

func InjectSelfUpdateCommandHandler() (handler.SelfUpdateCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		core.ProvideGitHubToken,
		release_source.ProvideGithubReleaseSource,
		wire.Bind(new(ports.ReleaseSource), new(*release_source.GithubReleaseSource)),
		ProvideInstalledVersion,
		core.ProvideSelfUpdater,
		handler.ProvideSelfUpdateCommandHandler,
	)
	return handler.SelfUpdateCommandHandler{}, nil
}

func InjectTokenCommandHandler() (handler.TokenCommandHandler, error) {
	wire.Build(
		Adapter,
		handler.ProvideTokenCommandHandler,
	)
	return handler.TokenCommandHandler{}, nil
}
