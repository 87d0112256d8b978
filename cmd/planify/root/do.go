package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newDoCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Check a task off",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}

			key := dateutil.Key(date)
			if err := svc.Toggle(key, args[0], true); err != nil {
				return err
			}
			prog := svc.DayProgress(key)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Done"), args[0],
				ui.Muted.Render(fmt.Sprintf("(%d/%d today)", prog.Completed, prog.Total)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day of the task (YYYY-MM-DD, default today)")
	return cmd
}
