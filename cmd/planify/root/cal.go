package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newCalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cal [YYYY-MM]",
		Short: "Render a month calendar colored by completion",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			if len(args) == 1 {
				parsed, err := time.Parse("2006-01", args[0])
				if err != nil {
					return fmt.Errorf("parse month %q: %w", args[0], err)
				}
				first = parsed
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			all := svc.AllDayProgress()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCalendar, first.Format("January 2006")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Su Mo Tu We Th Fr Sa"))

			daysIn := first.AddDate(0, 1, -1).Day()
			var line strings.Builder
			line.WriteString(strings.Repeat("   ", int(first.Weekday())))
			for day := 1; day <= daysIn; day++ {
				d := first.AddDate(0, 0, day-1)
				prog := all[dateutil.Key(d)]
				line.WriteString(ui.PercentStyle(prog.Percentage).Render(fmt.Sprintf("%2d", day)))
				line.WriteString(" ")
				if d.Weekday() == time.Saturday || day == daysIn {
					fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(line.String(), " "))
					line.Reset()
				}
			}
			return nil
		},
	}
	return cmd
}
