package app

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"composer-sync/internal/core"
	"composer-sync/internal/ports"
	"composer-sync/internal/types"
)

const (
	lockFileName  = "composer.lock"
	vendorDirName = "vendor"

	cacheDirEnv = "COMPOSER_CACHE_DIR"
	authEnv     = "COMPOSER_AUTH"
)

// temporaryErrorSentinel marks failures the execution collaborator reports
// as transient; they are rethrown unchanged so the caller can retry.
const temporaryErrorSentinel = "temporary-error"

// unresolvableMessage is the resolver's "no installable set" failure. It is
// an expected, user-actionable outcome, not a system fault.
const unresolvableMessage = "Your requirements could not be resolved to an installable set of packages"

var diskFullIndicators = []string{
	"write error (disk full?)",
	"No space left on device",
	"disk is full",
}

// Synthesize writes the edited manifest into the working tree, drives the
// external resolver, and reifies the resulting mutation into artifacts.
// A nil result with nil error means no update occurred or the inputs are
// not manageable; a result carries either artifacts or one classified
// artifact error, never both.
func (s Service) Synthesize(ctx context.Context, req SynthesizeRequest) (*SynthesizeResult, error) {
	assert.NotEmpty(ctx, req.ManifestPath, "manifest path must be set")
	assert.NotEmpty(ctx, req.BaseDir, "base dir must be set")

	lockPath := s.FS.SiblingPath(req.ManifestPath, lockFileName)
	lockContent, ok, err := s.FS.ReadText(filepath.Join(req.BaseDir, lockPath))
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debug().Str("file", req.ManifestPath).Msg("no lock file found, nothing to update")
		return nil, nil
	}

	var manifest types.Manifest
	if err := json.Unmarshal([]byte(req.NewManifestContent), &manifest); err != nil {
		log.Debug().Str("file", req.ManifestPath).Err(err).Msg("invalid manifest content, skipping")
		return nil, nil
	}
	var lock types.Lock
	if err := json.Unmarshal([]byte(lockContent), &lock); err != nil {
		log.Debug().Str("file", lockPath).Err(err).Msg("invalid lock file, skipping")
		return nil, nil
	}

	if err := s.FS.WriteText(filepath.Join(req.BaseDir, req.ManifestPath), req.NewManifestContent); err != nil {
		return nil, err
	}
	vendorDir := s.FS.SiblingPath(req.ManifestPath, vendorDirName)
	vendorBefore := s.FS.PathExists(filepath.Join(req.BaseDir, vendorDir))

	env := map[string]string{}
	if req.Config.CacheDir != "" {
		if err := s.FS.EnsureDir(req.Config.CacheDir); err != nil {
			return nil, err
		}
		env[cacheDirEnv] = req.Config.CacheDir
	}
	if auth, ok := core.NewAuthAssembler(s.HostRules).Assemble(); ok {
		env[authEnv] = auth
	}

	planner := core.NewCommandPlanner(s.InstallRequired)
	commands := planner.Plan(lock, req.UpdatedDeps, req.Config)
	execErr := s.Exec.Run(ctx, commands, ports.ExecOptions{
		Cwd:            filepath.Join(req.BaseDir, filepath.Dir(req.ManifestPath)),
		Env:            env,
		ToolConstraint: req.Config.ComposerConstraint,
	})
	if execErr != nil {
		return s.classifyFailure(lockPath, execErr)
	}

	status, err := s.Status.Status(ctx, req.BaseDir)
	if err != nil {
		return s.classifyFailure(lockPath, err)
	}
	if !status.IsModified(lockPath) {
		log.Debug().Str("file", lockPath).Msg("lock file is unchanged")
		return nil, nil
	}

	artifacts, err := core.NewReconciler(s.FS).Build(core.ReconcileInput{
		Status:       status,
		BaseDir:      req.BaseDir,
		LockPath:     lockPath,
		VendorDir:    vendorDir,
		VendorBefore: vendorBefore,
	})
	if err != nil {
		return s.classifyFailure(lockPath, err)
	}
	return &SynthesizeResult{Artifacts: artifacts}, nil
}

// classifyFailure sorts a run failure into the error taxonomy: transient
// failures and disk exhaustion propagate as errors, everything else becomes
// a single data-shaped artifact error so batch callers can keep going.
func (s Service) classifyFailure(lockPath string, err error) (*SynthesizeResult, error) {
	message := errorText(err)
	if strings.Contains(message, temporaryErrorSentinel) {
		return nil, err
	}
	for _, indicator := range diskFullIndicators {
		if strings.Contains(message, indicator) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeResourceExhausted).
				WithMsg("out of disk space").
				WithCause(err)
		}
	}
	if strings.Contains(message, unresolvableMessage) {
		log.Info().Err(err).Msg("manifest requirements cannot be satisfied")
	} else {
		log.Debug().Err(err).Msg("failed to update lock file")
	}
	return &SynthesizeResult{
		Errors: []types.ArtifactError{{LockFilePath: lockPath, Message: err.Error()}},
	}, nil
}

// errorText flattens an error chain so sentinel matching sees wrapped
// command output as well as the top-level message.
func errorText(err error) string {
	var builder strings.Builder
	for current := err; current != nil; current = errors.Unwrap(current) {
		builder.WriteString(current.Error())
		builder.WriteString("\n")
	}
	return builder.String()
}
