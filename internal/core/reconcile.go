package core

import (
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"composer-sync/internal/ports"
	"composer-sync/internal/shared"
	"composer-sync/internal/types"
)

// Reconciler converts a post-run working-tree status into the typed
// artifact list. The status is plain data, so the conversion is testable
// with fabricated diffs; only file contents go through the filesystem port.
type Reconciler struct {
	FS ports.FilesystemPort
}

func NewReconciler(fs ports.FilesystemPort) Reconciler {
	return Reconciler{FS: fs}
}

// ReconcileInput describes one run's outcome. All paths are repo-relative;
// BaseDir anchors them for content reads.
type ReconcileInput struct {
	Status       types.RepoStatus
	BaseDir      string
	LockPath     string
	VendorDir    string
	VendorBefore bool
}

// Build returns the artifact set for a run, or nil when the lock file was
// not modified (no update occurred). Vendor entries are included only when
// the vendor directory existed before the run, signaling the caller tracks
// vendored code; anything outside it is excluded by prefix.
func (r Reconciler) Build(input ReconcileInput) ([]types.Artifact, error) {
	if !input.Status.IsModified(input.LockPath) {
		return nil, nil
	}
	lockContent, ok, err := r.FS.ReadText(filepath.Join(input.BaseDir, input.LockPath))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lock file reported modified but missing on disk")
	}
	artifacts := []types.Artifact{types.NewAddition(input.LockPath, lockContent)}
	if !input.VendorBefore {
		return artifacts, nil
	}

	changed := append(append([]string{}, input.Status.Modified...), input.Status.NotAdded...)
	for _, path := range changed {
		if path == input.LockPath || !shared.HasPathPrefix(path, input.VendorDir) {
			continue
		}
		content, ok, err := r.FS.ReadText(filepath.Join(input.BaseDir, path))
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debug().Str("path", path).Msg("changed vendor file vanished, skipping")
			continue
		}
		artifacts = append(artifacts, types.NewAddition(path, content))
	}
	for _, path := range input.Status.Deleted {
		if !shared.HasPathPrefix(path, input.VendorDir) {
			continue
		}
		artifacts = append(artifacts, types.NewDeletion(path))
	}
	return artifacts, nil
}
