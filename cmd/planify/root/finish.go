package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newFinishCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Mark every task on a day done",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}

			if err := svc.FinishDay(date); err != nil {
				return err
			}
			prog := svc.DayProgress(dateutil.Key(date))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Day complete"),
				date.Format("2006-01-02"),
				ui.Muted.Render(fmt.Sprintf("(%d tasks)", prog.Total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to finish (YYYY-MM-DD, default today)")
	return cmd
}
