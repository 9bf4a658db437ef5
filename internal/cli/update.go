package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"composer-sync/internal/adapters"
	"composer-sync/internal/app"
	"composer-sync/internal/ports"
	"composer-sync/internal/types"
)

type updateOptions struct {
	Deps               []string
	LockMaintenance    bool
	CacheDir           string
	NoScripts          bool
	NoPlugins          bool
	IgnorePlatformAll  bool
	IgnorePlatformReqs []string
	HostRulesFile      string
	ComposerConstraint string
	Apply              bool
}

func newUpdateCommand() *cobra.Command {
	opts := updateOptions{}
	cmd := &cobra.Command{
		Use:   "update <composer.json>",
		Short: "Regenerate the lock file for changed dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Deps, "dep", nil, "Dependency name(s) being changed")
	cmd.Flags().BoolVar(&opts.LockMaintenance, "lock-maintenance", false, "Refresh the whole lock file")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Resolver cache directory")
	cmd.Flags().BoolVar(&opts.NoScripts, "no-scripts", false, "Disable package scripts")
	cmd.Flags().BoolVar(&opts.NoPlugins, "no-plugins", false, "Disable resolver plugins")
	cmd.Flags().BoolVar(&opts.IgnorePlatformAll, "ignore-platform-reqs", false, "Ignore all platform requirements")
	cmd.Flags().StringSliceVar(&opts.IgnorePlatformReqs, "ignore-platform-req", nil, "Platform requirement(s) to ignore")
	cmd.Flags().StringVar(&opts.HostRulesFile, "host-rules", "", "Host rules YAML file")
	cmd.Flags().StringVar(&opts.ComposerConstraint, "composer-constraint", "", "Resolver tool version constraint")
	cmd.Flags().BoolVar(&opts.Apply, "apply", true, "Write resulting artifacts back to the working tree")

	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("host_rules", cmd.Flags().Lookup("host-rules"))

	return cmd
}

func runUpdate(ctx context.Context, manifestPath string, opts updateOptions) error {
	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid manifest path").
			WithCause(err)
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}

	var hostRules ports.HostRulesPort
	if file := resolveString(opts.HostRulesFile, "host_rules"); file != "" {
		loaded, err := adapters.LoadHostRulesFile(file)
		if err != nil {
			return err
		}
		hostRules = loaded
	}

	service := app.NewService(hostRules)
	result, err := service.Synthesize(ctx, app.SynthesizeRequest{
		ManifestPath:       filepath.Base(absPath),
		BaseDir:            filepath.Dir(absPath),
		UpdatedDeps:        opts.Deps,
		NewManifestContent: string(content),
		Config: types.UpdateConfig{
			IsLockFileMaintenance: opts.LockMaintenance,
			IgnoreAllPlatformReqs: opts.IgnorePlatformAll,
			IgnorePlatformReqs:    opts.IgnorePlatformReqs,
			NoScripts:             opts.NoScripts,
			NoPlugins:             opts.NoPlugins,
			CacheDir:              resolveString(opts.CacheDir, "cache_dir"),
			ComposerConstraint:    opts.ComposerConstraint,
		},
	})
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println("lock file unchanged")
		return nil
	}
	for _, artifactErr := range result.Errors {
		fmt.Printf("error: %s: %s\n", artifactErr.LockFilePath, artifactErr.Message)
	}
	if len(result.Errors) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("update produced no installable set")
	}
	baseDir := filepath.Dir(absPath)
	for _, artifact := range result.Artifacts {
		switch artifact.Type {
		case types.ArtifactTypeAddition:
			if opts.Apply {
				if err := os.WriteFile(filepath.Join(baseDir, artifact.Path), []byte(artifact.Contents), 0644); err != nil {
					return errbuilder.New().
						WithCode(errbuilder.CodeInternal).
						WithMsg("failed to write artifact").
						WithCause(err)
				}
			}
			fmt.Printf("updated: %s\n", artifact.Path)
		case types.ArtifactTypeDeletion:
			if opts.Apply {
				if err := os.Remove(filepath.Join(baseDir, artifact.Path)); err != nil && !os.IsNotExist(err) {
					return errbuilder.New().
						WithCode(errbuilder.CodeInternal).
						WithMsg("failed to remove artifact").
						WithCause(err)
				}
			}
			fmt.Printf("deleted: %s\n", artifact.Path)
		}
	}
	return nil
}

// resolveString prefers the flag value, then config/env.
func resolveString(flagValue string, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}
