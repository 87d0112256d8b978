package root

import (
	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive day board",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			return tui.RunDay(svc, date, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to open (YYYY-MM-DD, default today)")
	return cmd
}
