package ports

import (
	"context"

	"composer-sync/internal/types"
)

// StatusPort reports uncommitted working-tree changes relative to dir.
type StatusPort interface {
	Status(ctx context.Context, dir string) (types.RepoStatus, error)
}
