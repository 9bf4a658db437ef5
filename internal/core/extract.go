package core

import (
	"strings"

	"composer-sync/internal/types"
)

// Interpreter constraints resolve against the upstream source repository's
// tags instead of any package registry.
const (
	phpDependencyName    = "php"
	phpSourcePackage     = "php/php-src"
	phpExtractVersionPat = `^php-(?<version>.*)$`
)

// Extractor turns a parsed manifest plus optional lock snapshot into the
// normalized dependency list. It is read-only and side-effect-free.
type Extractor struct{}

func NewExtractor() Extractor {
	return Extractor{}
}

// Extract walks both dependency groups in declaration order and resolves
// each entry's provenance. A nil lock simply leaves locked versions unset.
func (e Extractor) Extract(manifest types.Manifest, lock *types.Lock) types.DependencyGroup {
	registries := ResolveRepositories(manifest.Repositories)

	group := types.DependencyGroup{ProjectType: manifest.Type}
	group.Deps = append(group.Deps,
		e.extractGroup(manifest.Require, types.DepTypeRequire, registries, lockList(lock, types.DepTypeRequire))...)
	group.Deps = append(group.Deps,
		e.extractGroup(manifest.RequireDev, types.DepTypeRequireDev, registries, lockList(lock, types.DepTypeRequireDev))...)

	if constraint, ok := manifest.Require.Get(phpDependencyName); ok {
		group.PhpConstraint = constraint
	}
	return group
}

func (e Extractor) extractGroup(pairs types.PairList, depType types.DepType, registries types.RegistrySet, locked []types.LockedPackage) []types.Dependency {
	var deps []types.Dependency
	for _, pair := range pairs {
		name := pair.Name
		if name == "" {
			continue
		}
		dep := types.Dependency{
			Name:         name,
			DepType:      depType,
			CurrentValue: strings.TrimSpace(pair.Constraint),
		}
		e.resolveSource(&dep, registries)
		if dep.SkipReason == types.SkipReasonPathDependency {
			deps = append(deps, dep)
			continue
		}
		if record, ok := types.Find(locked, name); ok && IsStableVersion(record.Version) {
			dep.LockedVersion = NormalizeVersion(record.Version)
		}
		if dep.SkipReason == types.SkipReasonNone &&
			dep.Datasource == types.DatasourcePackagist &&
			len(registries.RegistryURLs) > 0 {
			dep.RegistryURLs = registries.RegistryURLs
		}
		deps = append(deps, dep)
	}
	return deps
}

// resolveSource binds the dependency to exactly one of: the interpreter
// source tags, a named repository, a skip reason, or the default registry.
func (e Extractor) resolveSource(dep *types.Dependency, registries types.RegistrySet) {
	if dep.Name == phpDependencyName {
		dep.Datasource = types.DatasourceGithubTags
		dep.PackageName = phpSourcePackage
		dep.ExtractVersion = phpExtractVersionPat
		return
	}
	if repo, ok := registries.Named[dep.Name]; ok {
		switch repo.Kind {
		case types.RepoKindVcs, types.RepoKindGit:
			dep.Datasource = types.DatasourceGitTags
			dep.PackageName = repo.URL
			return
		case types.RepoKindPath:
			dep.SkipReason = types.SkipReasonPathDependency
			return
		}
	}
	if !strings.Contains(dep.Name, "/") {
		// The registry cannot resolve unscoped names; the entry is still
		// emitted so callers keep visibility.
		dep.SkipReason = types.SkipReasonUnsupported
		return
	}
	dep.Datasource = types.DatasourcePackagist
}

func lockList(lock *types.Lock, depType types.DepType) []types.LockedPackage {
	if lock == nil {
		return nil
	}
	if depType == types.DepTypeRequireDev {
		return lock.PackagesDev
	}
	return lock.Packages
}
