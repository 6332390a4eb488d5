package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/app"
)

// runApp loads configuration and the question bank, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Bank:             rt.bank,
		Start:            rt.cfg.Flow.Start,
		Splash:           !noSplash && rt.cfg.Flow.Start == "/",
		StrictOrder:      rt.cfg.Flow.StrictOrder,
		DefaultTimeLimit: rt.cfg.Flow.DefaultTimeLimit,
		Logger:           rt.logger,
	}

	rt.logger.Info("starting",
		zap.String("start", opts.Start),
		zap.Bool("strict", opts.StrictOrder))
	return app.Run(opts)
}
