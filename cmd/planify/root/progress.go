package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show today's and the five-year progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Progress"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Epoch", svc.Epoch().Format("2006-01-02")))

			today := svc.DayProgress(dateutil.Key(time.Now()))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d (%d%%) %s\n",
				ui.Key.Render("Today:"), today.Completed, today.Total, today.Percentage,
				ui.ProgressBar(today.Completed, today.Total, 24))

			global := svc.GlobalProgress()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks, %d%% %s\n",
				ui.Key.Render("Overall:"), global.Completed, global.Percentage,
				ui.ProgressBar(global.Percentage, 100, 24))

			active := 0
			for _, p := range svc.AllDayProgress() {
				if p.Completed > 0 {
					active++
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Active days", active))
			return nil
		},
	}
	return cmd
}
