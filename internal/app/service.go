package app

import (
	"composer-sync/internal/adapters"
	"composer-sync/internal/policies"
	"composer-sync/internal/ports"
	"composer-sync/internal/types"
)

type Service struct {
	FS        ports.FilesystemPort
	Exec      ports.ExecPort
	Status    ports.StatusPort
	HostRules ports.HostRulesPort

	// InstallRequired is the pre-update install predicate; swap it to
	// override the default lock-shape heuristic.
	InstallRequired func(types.Lock) bool
}

func NewService(hostRules ports.HostRulesPort) Service {
	return Service{
		FS:              adapters.NewFilesystemAdapter(),
		Exec:            adapters.NewShellExecAdapter(),
		Status:          adapters.NewGitStatusAdapter(),
		HostRules:       hostRules,
		InstallRequired: policies.NewInstallPolicy().InstallRequired,
	}
}
