package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"composer-sync/internal/ports"
)

type FilesystemAdapter struct{}

func NewFilesystemAdapter() FilesystemAdapter {
	return FilesystemAdapter{}
}

func (a FilesystemAdapter) ReadText(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read file").
			WithCause(err)
	}
	return string(data), true, nil
}

func (a FilesystemAdapter) WriteText(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create parent directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write file").
			WithCause(err)
	}
	return nil
}

func (a FilesystemAdapter) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (a FilesystemAdapter) EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create directory").
			WithCause(err)
	}
	return nil
}

func (a FilesystemAdapter) SiblingPath(path string, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

var _ ports.FilesystemPort = FilesystemAdapter{}
