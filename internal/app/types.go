package app

import "composer-sync/internal/types"

type SynthesizeRequest struct {
	// ManifestPath is the repo-relative path to the manifest file.
	ManifestPath string

	// BaseDir is the working tree root all repo-relative paths anchor to.
	BaseDir string

	// UpdatedDeps names the dependencies being changed; ignored for a
	// lock-maintenance run.
	UpdatedDeps []string

	// NewManifestContent is the edited manifest to reconcile against.
	NewManifestContent string

	Config types.UpdateConfig
}

// SynthesizeResult carries either artifacts or a single artifact error,
// never both. A nil result means "nothing to manage here".
type SynthesizeResult struct {
	Artifacts []types.Artifact
	Errors    []types.ArtifactError
}
