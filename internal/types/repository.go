package types

// Repository is a single declaration from the manifest's repositories
// block, normalized into a closed tagged variant. Unknown type tags map to
// RepoKindUnsupported so they can be logged and skipped explicitly rather
// than silently defaulted.
type Repository struct {
	Kind RepoKind
	Name string
	URL  string
}

// RegistrySet is the output of repository resolution: named repositories
// that bind specific dependencies to a non-default source, plus the ordered
// fallback registry URL list.
type RegistrySet struct {
	Named        map[string]Repository
	RegistryURLs []string
}
