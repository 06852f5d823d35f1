package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/takweol/casematch/internal/bootstrap"
	"github.com/takweol/casematch/internal/config"
)

func newServeCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root)
		},
	}
}

func runServe(ctx context.Context, root *RootOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if root.ConfigPath != "" {
		cfg, err = config.Load(root.ConfigPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
