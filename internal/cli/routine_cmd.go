package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/spf13/cobra"
)

func newRoutineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage the daily practice routine",
	}

	cmd.AddCommand(
		newRoutineListCmd(app),
		newRoutineTodayCmd(app),
		newRoutineAddCmd(app),
		newRoutineDuplicateCmd(app),
		newRoutineTypeCmd(app),
		newRoutineToggleCmd(app),
		newRoutineRemoveCmd(app),
	)

	return cmd
}

func newRoutineListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List routine days, newest first",
		Args:    cobra.NoArgs,
		RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineList(app.Routine.List()))
			return nil
		}),
	}
}

func newRoutineTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's routine, creating it if needed",
		Args:  cobra.NoArgs,
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			day, err := app.Routine.Today(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineDay(day))
			return nil
		}),
	}
}

func newRoutineAddCmd(app *App) *cobra.Command {
	var dayType string

	cmd := &cobra.Command{
		Use:   "add <YYYY-MM-DD>",
		Short: "Create a day with the canonical tasks, replacing any day on that date",
		Args:  cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			day, err := app.Routine.Add(ctx, args[0], domain.DayType(dayType))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineDay(day))
			return nil
		}),
	}

	cmd.Flags().StringVar(&dayType, "type", string(domain.DayRegular), "regular or grind")

	return cmd
}

func newRoutineDuplicateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate <day-id>",
		Aliases: []string{"dup"},
		Short:   "Copy a day's tasks into the next calendar day",
		Args:    cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			day, err := app.Routine.Duplicate(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineDay(day))
			return nil
		}),
	}
}

func newRoutineTypeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "type <day-id> <regular|grind>",
		Short: "Change a day's type, resetting its tasks",
		Args:  cobra.ExactArgs(2),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			day, changed, err := app.Routine.ChangeType(ctx, id, domain.DayType(args[1]))
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already a %s day\n", day.Date, day.Type)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRoutineDay(day))
			return nil
		}),
	}
}

func newRoutineToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <day-id> <task-id>",
		Short: "Flip a routine task's completion",
		Args:  cobra.ExactArgs(2),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			dayID, err := parseID(args[0])
			if err != nil {
				return err
			}
			taskID, err := parseID(args[1])
			if err != nil {
				return err
			}
			done, err := app.Routine.ToggleTask(ctx, dayID, taskID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d %s\n", taskID, formatter.Check(done))
			return nil
		}),
	}
}

func newRoutineRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <day-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a routine day",
		Args:    cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok, err := confirmDestructive(app, yes, fmt.Sprintf("Delete routine day #%d?", id))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Routine.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed day #%d\n", id)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
