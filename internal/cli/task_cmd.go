package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the free-form task list",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List tasks",
			Args:    cobra.NoArgs,
			RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
				items, err := app.Tasks.List(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(items))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "add <text...>",
			Short: "Append a task",
			Args:  cobra.MinimumNArgs(1),
			RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				items, err := app.Tasks.Add(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(items))
				return nil
			}),
		},
		&cobra.Command{
			Use:   "toggle <n>",
			Short: "Flip a task's done flag",
			Args:  cobra.ExactArgs(1),
			RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				idx, err := parsePosition(args[0])
				if err != nil {
					return err
				}
				items, err := app.Tasks.Toggle(ctx, idx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(items))
				return nil
			}),
		},
		&cobra.Command{
			Use:     "remove <n>",
			Aliases: []string{"rm"},
			Short:   "Delete a task",
			Args:    cobra.ExactArgs(1),
			RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
				idx, err := parsePosition(args[0])
				if err != nil {
					return err
				}
				items, err := app.Tasks.Remove(ctx, idx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(items))
				return nil
			}),
		},
	)

	return cmd
}
