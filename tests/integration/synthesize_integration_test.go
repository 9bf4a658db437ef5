//go:build integration

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"composer-sync/internal/app"
	"composer-sync/internal/types"
	"composer-sync/tests/testutil"
)

const initialManifest = `{"require": {"acme/widget": "^1.0"}}`

const initialLock = `{"packages": [{"name": "acme/widget", "version": "1.0.0"}], "packages-dev": []}`

const updatedLock = `{"packages": [{"name": "acme/widget", "version": "2.0.0"}], "packages-dev": []}`

// stubComposer fakes the resolver: it rewrites the lock, drops one vendored
// file and adds another, regardless of arguments.
const stubComposer = `#!/bin/sh
cat > composer.lock <<'EOF'
{"packages": [{"name": "acme/widget", "version": "2.0.0"}], "packages-dev": []}
EOF
mkdir -p vendor/acme
printf '<?php // widget 2.0.0\n' > vendor/acme/widget2.php
rm -f vendor/acme/widget1.php
`

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

func TestSynthesizeAgainstRealWorkingTree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping working-tree integration in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	repo := t.TempDir()
	testutil.WriteFile(t, filepath.Join(repo, "composer.json"), initialManifest)
	testutil.WriteFile(t, filepath.Join(repo, "composer.lock"), initialLock)
	testutil.WriteFile(t, filepath.Join(repo, "vendor", "acme", "widget1.php"), "<?php // widget 1.0.0\n")

	runGit(t, repo, "init")
	runGit(t, repo, "config", "user.email", "ci@example.com")
	runGit(t, repo, "config", "user.name", "ci")
	runGit(t, repo, "add", ".")
	runGit(t, repo, "commit", "-m", "baseline")

	binDir := t.TempDir()
	stubPath := filepath.Join(binDir, "composer")
	require.NoError(t, os.WriteFile(stubPath, []byte(stubComposer), 0755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	service := app.NewService(nil)
	result, err := service.Synthesize(t.Context(), app.SynthesizeRequest{
		ManifestPath:       "composer.json",
		BaseDir:            repo,
		UpdatedDeps:        []string{"acme/widget"},
		NewManifestContent: `{"require": {"acme/widget": "^2.0"}}`,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result.Errors)

	byPath := map[string]types.Artifact{}
	for _, artifact := range result.Artifacts {
		byPath[artifact.Path] = artifact
	}
	lock, ok := byPath["composer.lock"]
	require.True(t, ok, "lock artifact missing; got %v", result.Artifacts)
	assert.Equal(t, types.ArtifactTypeAddition, lock.Type)
	assert.JSONEq(t, updatedLock, lock.Contents)

	added, ok := byPath[filepath.Join("vendor", "acme", "widget2.php")]
	require.True(t, ok, "vendor addition missing")
	assert.Equal(t, types.ArtifactTypeAddition, added.Type)

	deleted, ok := byPath[filepath.Join("vendor", "acme", "widget1.php")]
	require.True(t, ok, "vendor deletion missing")
	assert.Equal(t, types.ArtifactTypeDeletion, deleted.Type)
}
