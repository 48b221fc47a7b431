package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Track course completion",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List courses",
			Args:    cobra.NoArgs,
			RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourses(app.Courses.List()))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "set <key> <completed>",
			Short: "Set completed units for a course (clamped to its total)",
			Args:  cobra.ExactArgs(2),
			RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid completed count %q", args[1])
				}
				p, err := app.Courses.Set(ctx, args[0], n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], formatter.RenderCount(p.Completed, p.Total, p.Percent(), 20))
				return nil
			}),
		},
	)

	return cmd
}
