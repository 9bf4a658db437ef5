package ports

// FilesystemPort abstracts the file reads and writes synthesis performs
// against the working tree.
type FilesystemPort interface {
	// ReadText returns the file contents, or ok=false when the path does
	// not exist.
	ReadText(path string) (content string, ok bool, err error)
	WriteText(path string, content string) error
	PathExists(path string) bool
	EnsureDir(path string) error

	// SiblingPath replaces the final path segment, preserving the
	// directory (composer.json -> composer.lock).
	SiblingPath(path string, name string) string
}
