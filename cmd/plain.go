package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/navigator/internal/bank"
	"github.com/abhisek/navigator/internal/console"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Answer one assessment module in plain line mode",
	Long: `Run a question module without the full-screen interface.

Questions are printed one at a time and answered by number on stdin, which
also makes scripted runs possible. Nothing is saved.`,
	RunE: runPlain,
}

func init() {
	plainCmd.Flags().String("module", string(bank.ModuleTechnical), "Module to run: psychometric or technical")
}

func runPlain(cmd *cobra.Command, args []string) error {
	moduleVal, _ := cmd.Flags().GetString("module")

	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	m, err := rt.bank.Module(bank.ModuleID(moduleVal))
	if err != nil {
		return err
	}

	runner := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), rt.logger)
	if _, err := runner.Run(cmd.Context(), m); err != nil {
		if errors.Is(err, console.ErrQuit) {
			fmt.Fprintln(cmd.OutOrStdout(), "\n(quit)")
			return nil
		}
		return err
	}
	return nil
}
