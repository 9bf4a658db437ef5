package ports

import "context"

// ExecOptions configures one command sequence run.
type ExecOptions struct {
	Cwd string

	// Env entries override the inherited environment.
	Env map[string]string

	// ToolConstraint names the resolver tool version the collaborator
	// should provide; resolution and installation of that version is the
	// collaborator's concern.
	ToolConstraint string
}

// ExecPort runs planned commands strictly in sequence, short-circuiting on
// the first failure. Failures carry the command output text so callers can
// classify them.
type ExecPort interface {
	Run(ctx context.Context, commands []string, opts ExecOptions) error
}
