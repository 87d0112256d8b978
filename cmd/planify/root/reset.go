package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all planner state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return errors.New("refusing to wipe state without --force")
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.Store().Reset(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconSweep+" Planner state reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm wiping all checks and custom tasks")
	return cmd
}
