package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/navigator/internal/router"
	"github.com/abhisek/navigator/internal/ui/layout"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the addressable pages",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-30s  %-24s  %s\n", "PATH", "TITLE", "STEP")
		for _, r := range router.Routes() {
			step := layout.StepLabel(r.Step, router.TotalSteps)
			if step == "" {
				step = "-"
			}
			fmt.Fprintf(out, "%-30s  %-24s  %s\n", r.Path, r.Title, step)
		}
	},
}
