package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"composer-sync/internal/policies"
	"composer-sync/internal/ports"
	"composer-sync/internal/types"
)

type fakeFS struct {
	files map[string]string
}

func newFakeFS(files map[string]string) *fakeFS {
	if files == nil {
		files = map[string]string{}
	}
	return &fakeFS{files: files}
}

func (f *fakeFS) ReadText(path string) (string, bool, error) {
	content, ok := f.files[path]
	return content, ok, nil
}

func (f *fakeFS) WriteText(path string, content string) error {
	f.files[path] = content
	return nil
}

func (f *fakeFS) PathExists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeFS) EnsureDir(path string) error {
	f.files[path] = ""
	return nil
}

func (f *fakeFS) SiblingPath(path string, name string) string {
	return filepath.Join(filepath.Dir(path), name)
}

type fakeExec struct {
	err      error
	commands []string
	opts     ports.ExecOptions
}

func (f *fakeExec) Run(_ context.Context, commands []string, opts ports.ExecOptions) error {
	f.commands = commands
	f.opts = opts
	return f.err
}

type fakeStatus struct {
	status types.RepoStatus
	err    error
}

func (f fakeStatus) Status(context.Context, string) (types.RepoStatus, error) {
	return f.status, f.err
}

type fakeRules struct {
	rules []types.HostRule
}

func (f fakeRules) Find(hostType string, _ string) (types.HostRule, bool) {
	for _, rule := range f.rules {
		if rule.HostType == hostType {
			return rule, true
		}
	}
	return types.HostRule{}, false
}

func (f fakeRules) FindAll(hostType string) []types.HostRule {
	var matched []types.HostRule
	for _, rule := range f.rules {
		if rule.HostType == hostType {
			matched = append(matched, rule)
		}
	}
	return matched
}

const validLock = `{"packages": [{"name": "acme/widget", "version": "1.0.0"}], "packages-dev": []}`

func testService(fs *fakeFS, exec *fakeExec, status fakeStatus, rules fakeRules) Service {
	return Service{
		FS:              fs,
		Exec:            exec,
		Status:          status,
		HostRules:       rules,
		InstallRequired: policies.NewInstallPolicy().InstallRequired,
	}
}

func baseRequest() SynthesizeRequest {
	return SynthesizeRequest{
		ManifestPath:       "composer.json",
		BaseDir:            "/repo",
		UpdatedDeps:        []string{"acme/widget"},
		NewManifestContent: `{"require": {"acme/widget": "^2.0"}}`,
	}
}

func TestSynthesizeAbsentWithoutLockFile(t *testing.T) {
	fs := newFakeFS(nil)
	exec := &fakeExec{}
	service := testService(fs, exec, fakeStatus{}, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, exec.commands, "no commands should run without a lock file")
}

func TestSynthesizeAbsentOnUnparseableManifest(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	service := testService(fs, &fakeExec{}, fakeStatus{}, fakeRules{})

	req := baseRequest()
	req.NewManifestContent = "not json"
	result, err := service.Synthesize(t.Context(), req)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSynthesizeAbsentWhenLockUnchanged(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	exec := &fakeExec{}
	status := fakeStatus{status: types.RepoStatus{Modified: []string{"README.md"}}}
	service := testService(fs, exec, status, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	assert.Nil(t, result)
	require.Len(t, exec.commands, 1)
	assert.Contains(t, exec.commands[0], "composer update 'acme/widget'")
}

func TestSynthesizeWritesManifestAndSetsEnvironment(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	exec := &fakeExec{}
	status := fakeStatus{status: types.RepoStatus{Modified: []string{"composer.lock"}}}
	rules := fakeRules{rules: []types.HostRule{
		{HostType: "github", MatchHost: "api.github.com", Token: "ghp_token"},
	}}
	service := testService(fs, exec, status, rules)

	req := baseRequest()
	req.Config.CacheDir = "/cache/composer"
	req.Config.ComposerConstraint = "^2.6"
	result, err := service.Synthesize(t.Context(), req)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, req.NewManifestContent, fs.files["/repo/composer.json"])
	assert.Equal(t, "/repo", exec.opts.Cwd)
	assert.Equal(t, "/cache/composer", exec.opts.Env["COMPOSER_CACHE_DIR"])
	assert.Contains(t, exec.opts.Env["COMPOSER_AUTH"], "ghp_token")
	assert.Equal(t, "^2.6", exec.opts.ToolConstraint)
}

func TestSynthesizeAuthEnvUnsetWhenNoCredentials(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	exec := &fakeExec{}
	status := fakeStatus{status: types.RepoStatus{Modified: []string{"composer.lock"}}}
	service := testService(fs, exec, status, fakeRules{})

	_, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	_, present := exec.opts.Env["COMPOSER_AUTH"]
	assert.False(t, present)
}

func TestSynthesizeLockAndVendorArtifacts(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"/repo/composer.lock":       validLock,
		"/repo/vendor":              "",
		"/repo/vendor/acme/new.php": "<?php",
	})
	status := fakeStatus{status: types.RepoStatus{
		Modified: []string{"composer.lock"},
		NotAdded: []string{"vendor/acme/new.php"},
		Deleted:  []string{"vendor/acme/old.php"},
	}}
	service := testService(fs, &fakeExec{}, status, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Errors)

	want := []types.Artifact{
		types.NewAddition("composer.lock", validLock),
		types.NewAddition("vendor/acme/new.php", "<?php"),
		types.NewDeletion("vendor/acme/old.php"),
	}
	if diff := cmp.Diff(want, result.Artifacts); diff != "" {
		t.Fatalf("unexpected artifacts (-want +got):\n%s", diff)
	}
}

func TestSynthesizeTemporaryErrorRethrown(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	execErr := errors.New("temporary-error")
	service := testService(fs, &fakeExec{err: execErr}, fakeStatus{}, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	assert.Nil(t, result)
	assert.Equal(t, execErr, err)
}

func TestSynthesizeDiskFullIsFatal(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	execErr := errors.New("composer update failed: write error (disk full?)")
	service := testService(fs, &fakeExec{err: execErr}, fakeStatus{}, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeResourceExhausted, errbuilder.CodeOf(err))
}

func TestSynthesizeUnresolvableBecomesArtifactError(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	execErr := errors.New("Your requirements could not be resolved to an installable set of packages.")
	service := testService(fs, &fakeExec{err: execErr}, fakeStatus{}, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Artifacts)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "composer.lock", result.Errors[0].LockFilePath)
	assert.Contains(t, result.Errors[0].Message, "could not be resolved")
}

func TestSynthesizeOtherFailureBecomesArtifactError(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	service := testService(fs, &fakeExec{err: errors.New("some resolver explosion")}, fakeStatus{}, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Errors, 1)
	assert.Empty(t, result.Artifacts, "errors and artifacts never mix")
}

func TestSynthesizeStatusFailureClassified(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	status := fakeStatus{err: errors.New("git status broke")}
	service := testService(fs, &fakeExec{}, status, fakeRules{})

	result, err := service.Synthesize(t.Context(), baseRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Errors, 1)
}

func TestSynthesizeLockMaintenancePlansUnscopedUpdate(t *testing.T) {
	fs := newFakeFS(map[string]string{"/repo/composer.lock": validLock})
	exec := &fakeExec{}
	status := fakeStatus{status: types.RepoStatus{Modified: []string{"composer.lock"}}}
	service := testService(fs, exec, status, fakeRules{})

	req := baseRequest()
	req.Config.IsLockFileMaintenance = true
	_, err := service.Synthesize(t.Context(), req)
	require.NoError(t, err)
	require.Len(t, exec.commands, 1)
	assert.Equal(t, "composer update --no-ansi --no-interaction", exec.commands[0])
}
