package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/navigator/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and validate question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions in the bank (optionally one module)",
	RunE: func(cmd *cobra.Command, args []string) error {
		moduleVal, _ := cmd.Flags().GetString("module")

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		modules := rt.bank.OrderedModules()
		if moduleVal != "" {
			m, err := rt.bank.Module(bank.ModuleID(moduleVal))
			if err != nil {
				return err
			}
			modules = []*bank.Module{m}
		}

		out := cmd.OutOrStdout()
		total := 0
		for _, m := range modules {
			fmt.Fprintf(out, "%s (%s, %d questions)\n", m.Title, m.ID, m.Len())
			fmt.Fprintf(out, "%-16s  %-26s  %-7s  %-7s  %s\n",
				"ID", "CATEGORY", "TYPE", "LEVEL", "PROMPT")
			for _, q := range m.Questions {
				fmt.Fprintf(out, "%-16s  %-26s  %-7s  %-7s  %s\n",
					q.ID, m.CategoryName(q.Category), q.Type, q.Difficulty, truncate(q.Prompt, 60))
			}
			fmt.Fprintln(out)
			total += m.Len()
		}
		fmt.Fprintf(out, "%d questions\n", total)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a question bank file against the schema and content rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		n := 0
		for _, m := range b.OrderedModules() {
			n += m.Len()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d modules, %d questions)\n",
			args[0], b.Version, len(b.Modules), n)
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	bankListCmd.Flags().String("module", "", "Only list this module (psychometric or technical)")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
