package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newClearCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all checks on a day (custom tasks are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}

			if err := svc.ClearDay(dateutil.Key(date)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Warn.Render(ui.IconSweep+" Checks cleared"), date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to clear (YYYY-MM-DD, default today)")
	return cmd
}
