package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/dateutil"
	"github.com/Nazish-kiran/planify/internal/ui"
)

func newUndoCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Uncheck a task",
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

			if err := svc.Toggle(dateutil.Key(date), args[0], false); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Warn.Render("↩ Unchecked"), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day of the task (YYYY-MM-DD, default today)")
	return cmd
}
