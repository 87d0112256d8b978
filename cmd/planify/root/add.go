package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/ui"
)

func newAddCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a custom task to a day",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task text is required")
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

			task, err := svc.AddCustom(date, args[0])
			if err != nil {
				return err
			}
			if task == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to add."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), task.Text, ui.Muted.Render("("+task.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to add to (YYYY-MM-DD, default today)")
	return cmd
}
