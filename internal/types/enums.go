package types

type DepType string

const (
	DepTypeRequire    DepType = "require"
	DepTypeRequireDev DepType = "require-dev"
)

type Datasource string

const (
	DatasourcePackagist  Datasource = "packagist"
	DatasourceGitTags    Datasource = "git-tags"
	DatasourceGithubTags Datasource = "github-tags"
)

type SkipReason string

const (
	SkipReasonNone           SkipReason = ""
	SkipReasonPathDependency SkipReason = "path-dependency"
	SkipReasonUnsupported    SkipReason = "unsupported"
)

type RepoKind string

const (
	RepoKindVcs         RepoKind = "vcs"
	RepoKindGit         RepoKind = "git"
	RepoKindPath        RepoKind = "path"
	RepoKindComposer    RepoKind = "composer"
	RepoKindPackage     RepoKind = "package"
	RepoKindDisable     RepoKind = "disable"
	RepoKindUnsupported RepoKind = "unsupported"
)

type ArtifactType string

const (
	ArtifactTypeAddition ArtifactType = "addition"
	ArtifactTypeDeletion ArtifactType = "deletion"
)
