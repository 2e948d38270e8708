package commands

import (
	"bankagent/internal/app"
	"bankagent/internal/config"
	"bankagent/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "bankctl",
		Short:        "Operate the bank transfer agent",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			log := zap.NewNop()
			if verbose {
				log = logger.New(config.IsProduction())
			}

			a, err := app.New(log)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			return appCtx.Close()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log service activity to stderr")

	root.AddCommand(seedOperatorCmd(), bankCmd(), transferCmd())
	return root.Execute()
}
