package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"composer-sync/internal/app"
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <composer.json>",
		Short: "Extract the normalized dependency list from a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runExtract(ctx context.Context, manifestPath string) error {
	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	service := app.NewService(nil)
	group, err := service.Extract(ctx, string(content), manifestPath)
	if err != nil {
		return err
	}
	if group == nil {
		fmt.Println("nothing to manage")
		return nil
	}
	encoded, err := json.MarshalIndent(group, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode dependencies").
			WithCause(err)
	}
	fmt.Println(string(encoded))
	return nil
}
