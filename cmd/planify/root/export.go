package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Nazish-kiran/planify/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the planner state blob (default: stdout)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return svc.Store().ExportTo(cmd.OutOrStdout())
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := svc.Store().ExportTo(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconExport+" Exported"), args[0])
			return nil
		},
	}
	return cmd
}
