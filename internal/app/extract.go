package app

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"composer-sync/internal/core"
	"composer-sync/internal/types"
)

// Extract parses manifest content into the normalized dependency group.
// It returns nil (no error) when the content is not a parseable manifest or
// declares no dependencies: there is nothing to manage in that file.
func (s Service) Extract(ctx context.Context, content string, manifestPath string) (*types.DependencyGroup, error) {
	var manifest types.Manifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		log.Debug().Str("file", manifestPath).Err(err).Msg("invalid manifest, skipping")
		return nil, nil
	}

	lock := s.readLock(manifestPath)
	group := core.NewExtractor().Extract(manifest, lock)
	if len(group.Deps) == 0 {
		log.Debug().Str("file", manifestPath).Msg("no dependencies declared, skipping")
		return nil, nil
	}
	return &group, nil
}

// readLock loads the sibling lock file if one exists. A missing or
// malformed lock only means no locked versions are attached.
func (s Service) readLock(manifestPath string) *types.Lock {
	if s.FS == nil {
		return nil
	}
	lockPath := s.FS.SiblingPath(manifestPath, "composer.lock")
	content, ok, err := s.FS.ReadText(lockPath)
	if err != nil || !ok {
		return nil
	}
	var lock types.Lock
	if err := json.Unmarshal([]byte(content), &lock); err != nil {
		log.Debug().Str("file", filepath.Base(lockPath)).Err(err).Msg("invalid lock file, ignoring")
		return nil
	}
	return &lock
}
