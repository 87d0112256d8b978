package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "planify",
	Short:         "Planify — local-first five-year daily planner",
	Long:          "Planify is a local-first CLI/TUI planner. Every day gets four generated tasks (LEARN/DO/BUILD/BUSINESS) from a fixed weekly curriculum, plus your own custom tasks; completion rolls up into day and five-year progress.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newDayCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newDoCmd(),
		newUndoCmd(),
		newFinishCmd(),
		newClearCmd(),
		newProgressCmd(),
		newHeatmapCmd(),
		newCalCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
