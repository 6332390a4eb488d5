package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/config"
	"github.com/abhisek/navigator/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "navigator",
	Short: "DevOps career readiness assessment",
	Long: `DevOps Navigator walks you through a multi-step career readiness assessment:
a psychometric questionnaire, a timed technical quiz, a WISCAR readiness
analysis, recommendations and career guidance.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a navigator.yaml config file")
	pf.String("bank", "", "Path to a question bank YAML file (default: built-in bank)")
	pf.String("log-file", "", "Write logs to this file (default: no logging)")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")

	rootCmd.Flags().String("start", "/", "Path to open first, e.g. /assessment/technical")
	rootCmd.Flags().Bool("strict", false, "Redirect deep links past the next unvisited step")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(versionCmd)
}

// runtime is the resolved configuration and its dependencies.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	bank   *bank.Bank
}

// loadRuntime reads config from --config, the environment and the command's
// flags, then opens the logger and question bank.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file, Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	b, err := bank.LoadOrDefault(cfg.Bank.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	logger.Info("question bank loaded",
		zap.String("path", cfg.Bank.Path),
		zap.String("version", b.Version),
		zap.Int("modules", len(b.Modules)))

	return &runtime{cfg: cfg, logger: logger, bank: b}, nil
}

func (r *runtime) close() {
	_ = r.logger.Sync()
}
