package adapters

import (
	"context"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"composer-sync/internal/ports"
	"composer-sync/internal/shared"
	"composer-sync/internal/types"
)

// GitStatusAdapter derives the working-tree diff from git's porcelain
// status output.
type GitStatusAdapter struct{}

func NewGitStatusAdapter() GitStatusAdapter {
	return GitStatusAdapter{}
}

func (a GitStatusAdapter) Status(ctx context.Context, dir string) (types.RepoStatus, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return types.RepoStatus{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("git status failed").
			WithCause(shared.CommandError(output, err))
	}
	return parsePorcelain(string(output)), nil
}

// parsePorcelain maps `git status --porcelain` lines onto the status
// buckets. Untracked entries land in NotAdded, anything with a delete flag
// in Deleted, the rest in Modified. Renames count as a modification of the
// new path.
func parsePorcelain(output string) types.RepoStatus {
	status := types.RepoStatus{}
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := strings.TrimSpace(line[3:])
		if idx := strings.Index(path, " -> "); idx >= 0 {
			path = path[idx+len(" -> "):]
		}
		path = strings.Trim(path, `"`)
		switch {
		case code == "??":
			status.NotAdded = append(status.NotAdded, path)
		case strings.Contains(code, "D"):
			status.Deleted = append(status.Deleted, path)
		default:
			status.Modified = append(status.Modified, path)
		}
	}
	return status
}

var _ ports.StatusPort = GitStatusAdapter{}
