package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/curriculum"
	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/storage"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the checklist for a day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			date, err := resolveDate(arg)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}

			date = dateutil.Midnight(date)
			track := curriculum.TrackForWeekday(date.Weekday())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Heading(ui.IconCalendar, date.Format("Monday, January 2, 2006")),
				ui.Muted.Render("— "+track.String()))

			for _, task := range svc.DayTasks(date) {
				suffix := ""
				if task.Type == storage.TaskCustom {
					suffix = " " + ui.Muted.Render("(custom)")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s%s\n",
					ui.Checkbox(task.Done), ui.Dim.Render(task.ID), task.Text, suffix)
			}

			prog := svc.DayProgress(dateutil.Key(date))
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s %d/%d (%d%%) %s\n",
				ui.Key.Render("Progress:"), prog.Completed, prog.Total, prog.Percentage,
				ui.ProgressBar(prog.Completed, prog.Total, 24))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
				ui.Muted.Render("Daily pillars:"),
				ui.Pill.Render("LEARN"), ui.Pill.Render("DO"),
				ui.Pill.Render("BUILD"), ui.Pill.Render("BUSINESS"))
			return nil
		},
	}
	return cmd
}
