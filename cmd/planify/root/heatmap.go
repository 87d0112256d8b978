package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/planner"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newHeatmapCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render the activity heatmap for a year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 {
				year = time.Now().Year()
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			all := svc.AllDayProgress()

			start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
			end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
			// Grid columns are Sunday-anchored weeks.
			gridStart := start.AddDate(0, 0, -int(start.Weekday()))
			weeks := int(end.Sub(gridStart).Hours()/(24*7)) + 1

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconChart, fmt.Sprintf("Activity %d", year)))
			fmt.Fprintln(cmd.OutOrStdout(), monthLabelRow(gridStart, start, weeks))

			dayNames := [7]string{"   ", "Mon", "   ", "Wed", "   ", "Fri", "   "}
			for row := 0; row < 7; row++ {
				var line strings.Builder
				line.WriteString(ui.Muted.Render(dayNames[row]) + " ")
				for w := 0; w < weeks; w++ {
					d := gridStart.AddDate(0, 0, w*7+row)
					if d.Before(start) || d.After(end) {
						line.WriteString("  ")
						continue
					}
					prog := all[dateutil.Key(d)]
					line.WriteString(ui.HeatCell(planner.ActivityLevel(prog.Completed)) + " ")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line.String())
			}

			legend := ui.Muted.Render("Less ")
			for lvl := 0; lvl <= 4; lvl++ {
				legend += ui.HeatCell(lvl) + " "
			}
			legend += ui.Muted.Render("More")
			fmt.Fprintln(cmd.OutOrStdout(), "\n    "+legend)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to render (default: current year)")
	return cmd
}

// monthLabelRow writes month names above the week column where each
// month starts. Columns are two characters wide.
func monthLabelRow(gridStart, yearStart time.Time, weeks int) string {
	row := []rune(strings.Repeat(" ", weeks*2+4))
	lastMonth := time.Month(0)
	for w := 0; w < weeks; w++ {
		d := gridStart.AddDate(0, 0, w*7)
		if d.Before(yearStart) {
			continue
		}
		if d.Month() == lastMonth {
			continue
		}
		lastMonth = d.Month()
		name := []rune(d.Format("Jan"))
		pos := 4 + w*2
		for i, r := range name {
			if pos+i < len(row) {
				row[pos+i] = r
			}
		}
	}
	return ui.Muted.Render(string(row))
}
