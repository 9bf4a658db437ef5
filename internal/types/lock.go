package types

// Lock is the parsed composer.lock snapshot of previously resolved exact
// versions. Only the fields the reconciler consults are modelled; the file
// itself is always passed through byte-for-byte.
type Lock struct {
	Packages         []LockedPackage `json:"packages"`
	PackagesDev      []LockedPackage `json:"packages-dev"`
	PluginAPIVersion string          `json:"plugin-api-version"`
}

type LockedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
}

// Find returns the first record matching name. At most one record per name
// is consulted; duplicates after the first are ignored.
func Find(packages []LockedPackage, name string) (LockedPackage, bool) {
	for _, pkg := range packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return LockedPackage{}, false
}
