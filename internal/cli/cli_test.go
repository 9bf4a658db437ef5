package cli

import (
	"errors"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"extract", "update"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestUpdateCommandFlags(t *testing.T) {
	cmd := newUpdateCommand()
	flags := []string{
		"dep", "lock-maintenance", "cache-dir", "no-scripts", "no-plugins",
		"ignore-platform-reqs", "ignore-platform-req", "host-rules",
		"composer-constraint", "apply",
	}
	for _, name := range flags {
		flag := cmd.Flags().Lookup(name)
		assert.NotNil(t, flag, "missing flag: %s", name)
	}
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad input"), 2},
		{errbuilder.New().WithCode(errbuilder.CodeUnavailable).WithMsg("retry later"), 3},
		{errbuilder.New().WithCode(errbuilder.CodeResourceExhausted).WithMsg("disk full"), 4},
		{errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("missing"), 5},
		{errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("boom"), 5},
		{errors.New("plain"), 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, exitCodeForError(tc.err))
	}
}
