package policies

import "composer-sync/internal/types"

// InstallPolicy decides whether a full install must run before the update
// step. The predicate is a compatibility guess over the lock's shape: when
// the lock pulls in resolver plugins, their code must be materialized in
// the vendor tree before an in-place update can run its hooks. A wrong
// guess only costs an extra no-op install, so the predicate is swappable
// on the service rather than hard-wired.
type InstallPolicy struct{}

func NewInstallPolicy() InstallPolicy {
	return InstallPolicy{}
}

// InstallRequired reports whether the lock lists any resolver-plugin
// package in either group.
func (p InstallPolicy) InstallRequired(lock types.Lock) bool {
	for _, pkg := range lock.Packages {
		if pkg.Type == "composer-plugin" {
			return true
		}
	}
	for _, pkg := range lock.PackagesDev {
		if pkg.Type == "composer-plugin" {
			return true
		}
	}
	return false
}
