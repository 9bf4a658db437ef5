package types

// Artifact is a single file change produced by a synthesis run: an addition
// carrying the new contents, or a deletion carrying only the path.
type Artifact struct {
	Type     ArtifactType
	Path     string
	Contents string
}

func NewAddition(path string, contents string) Artifact {
	return Artifact{Type: ArtifactTypeAddition, Path: path, Contents: contents}
}

func NewDeletion(path string) Artifact {
	return Artifact{Type: ArtifactTypeDeletion, Path: path}
}

// ArtifactError is a user-actionable synthesis failure. A run yields either
// artifacts or a single error, never both.
type ArtifactError struct {
	LockFilePath string
	Message      string
}

// RepoStatus reflects uncommitted working-tree changes after a run.
type RepoStatus struct {
	Modified []string
	NotAdded []string
	Deleted  []string
}

// IsModified reports whether path is among the modified paths.
func (s RepoStatus) IsModified(path string) bool {
	for _, candidate := range s.Modified {
		if candidate == path {
			return true
		}
	}
	return false
}
