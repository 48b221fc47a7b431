package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/spf13/cobra"
)

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTheme(app.Theme.Current()))
				return nil
			}
			return editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				var err error
				if args[0] == "toggle" {
					_, err = app.Theme.Toggle(ctx)
				} else {
					err = app.Theme.Set(ctx, domain.Theme(args[0]))
				}
				if err != nil {
					return err
				}
				t := app.Theme.Current()
				formatter.ApplyTheme(t)
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTheme(t))
				return nil
			})(cmd, args)
		},
	}
}
