package types

// UpdateConfig is the per-run configuration for synthesis. It is built
// fresh for every invocation and never persisted.
type UpdateConfig struct {
	// IsLockFileMaintenance requests an unscoped refresh of the whole lock
	// instead of an update scoped to specific dependencies.
	IsLockFileMaintenance bool

	// IgnorePlatformReqs ignores all platform requirements when nil is
	// false and the list is empty but enabled; specific package names
	// restrict the ignore to those requirements.
	IgnoreAllPlatformReqs bool
	IgnorePlatformReqs    []string

	NoScripts bool
	NoPlugins bool

	// CacheDir is exported to the resolver process as its cache directory.
	CacheDir string

	// ComposerConstraint optionally pins which resolver tool version the
	// execution collaborator should provide.
	ComposerConstraint string
}
