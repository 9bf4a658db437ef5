package adapters

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"composer-sync/internal/ports"
	"composer-sync/internal/shared"
)

// ShellExecAdapter runs planned commands through the shell, one at a time,
// in the given working directory. Tool-version resolution is out of scope
// here: the constraint is surfaced to the environment and otherwise left
// to whatever provides the tool on PATH.
type ShellExecAdapter struct{}

func NewShellExecAdapter() ShellExecAdapter {
	return ShellExecAdapter{}
}

func (a ShellExecAdapter) Run(ctx context.Context, commands []string, opts ports.ExecOptions) error {
	env := os.Environ()
	for key, value := range opts.Env {
		env = append(env, key+"="+value)
	}
	if opts.ToolConstraint != "" {
		env = append(env, "COMPOSER_TOOL_CONSTRAINT="+opts.ToolConstraint)
	}
	for _, command := range commands {
		log.Debug().Str("cmd", command).Str("cwd", opts.Cwd).Msg("running command")
		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		cmd.Dir = opts.Cwd
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		if err != nil {
			// The output text rides along in the message so callers can
			// classify the failure by its resolver-specific wording.
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("command failed: " + command + ": " + strings.TrimSpace(string(output))).
				WithCause(shared.CommandError(output, err))
		}
	}
	return nil
}

var _ ports.ExecPort = ShellExecAdapter{}
