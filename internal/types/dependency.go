package types

// Dependency is one extracted manifest entry with resolved provenance.
// Exactly one of default-registry resolution, named-repository binding, or
// a skip reason applies to each dependency.
type Dependency struct {
	Name          string     `json:"name"`
	DepType       DepType    `json:"depType"`
	CurrentValue  string     `json:"currentValue"`
	LockedVersion string     `json:"lockedVersion,omitempty"`
	Datasource    Datasource `json:"datasource,omitempty"`

	// PackageName is the explicit package identifier when it differs from
	// Name: the repository URL for git-tags deps, or the upstream source
	// repository for the PHP runtime pseudo-dependency.
	PackageName string `json:"packageName,omitempty"`

	// ExtractVersion strips a tag prefix when versions are read from
	// source tags rather than a registry.
	ExtractVersion string `json:"extractVersion,omitempty"`

	RegistryURLs []string   `json:"registryUrls,omitempty"`
	SkipReason   SkipReason `json:"skipReason,omitempty"`
}

// DependencyGroup is the full extraction result for one manifest, in
// declaration order (require before require-dev).
type DependencyGroup struct {
	Deps []Dependency `json:"deps"`

	// ProjectType is the manifest's free-form type label, passed through
	// unchanged for downstream consumers.
	ProjectType string `json:"projectType,omitempty"`

	// PhpConstraint is the raw interpreter constraint from the manifest's
	// php requirement, if declared.
	PhpConstraint string `json:"phpConstraint,omitempty"`
}
