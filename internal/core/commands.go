package core

import (
	"strings"

	"composer-sync/internal/shared"
	"composer-sync/internal/types"
)

const (
	manifestFileName = "composer.json"
	composerBinary   = "composer"
)

// CommandPlanner builds the exact resolver invocation sequence for one
// synthesis run. InstallRequired decides whether a preliminary install
// step precedes the update; it is injected so the heuristic stays
// overridable.
type CommandPlanner struct {
	InstallRequired func(types.Lock) bool
}

func NewCommandPlanner(installRequired func(types.Lock) bool) CommandPlanner {
	return CommandPlanner{InstallRequired: installRequired}
}

// Plan returns the ordered command sequence. When a pre-update install is
// required, the manifest edit is stashed around it so installation reflects
// the prior manifest state while the update reflects the new one. The pop
// tolerates an empty stash.
func (p CommandPlanner) Plan(lock types.Lock, changedDeps []string, cfg types.UpdateConfig) []string {
	args := commonArgs(cfg)

	var commands []string
	if p.InstallRequired != nil && p.InstallRequired(lock) {
		commands = append(commands,
			"git stash -- "+manifestFileName,
			composerBinary+" install"+args,
			"git stash pop || true",
		)
	}

	if cfg.IsLockFileMaintenance {
		commands = append(commands, composerBinary+" update"+args)
		return commands
	}

	quoted := make([]string, 0, len(changedDeps))
	for _, name := range changedDeps {
		quoted = append(quoted, shared.QuoteArg(name))
	}
	update := strings.TrimSpace(composerBinary + " update " + strings.Join(quoted, " "))
	commands = append(commands, update+" --with-dependencies"+args)
	return commands
}

// commonArgs derives the argument set shared by the install and update
// invocations from the run configuration.
func commonArgs(cfg types.UpdateConfig) string {
	var builder strings.Builder
	builder.WriteString(" --no-ansi --no-interaction")
	if len(cfg.IgnorePlatformReqs) > 0 {
		for _, name := range cfg.IgnorePlatformReqs {
			builder.WriteString(" --ignore-platform-req=" + shared.QuoteArg(name))
		}
	} else if cfg.IgnoreAllPlatformReqs {
		builder.WriteString(" --ignore-platform-reqs")
	}
	if cfg.NoScripts {
		builder.WriteString(" --no-scripts --no-autoloader")
	}
	if cfg.NoPlugins {
		builder.WriteString(" --no-plugins")
	}
	return builder.String()
}
