package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the progress dashboard",
		Args:  cobra.NoArgs,
		RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			stats, err := app.Status.Dashboard(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(stats, time.Now()))
			return nil
		}),
	}
}
