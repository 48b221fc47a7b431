package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/service"
	"github.com/spf13/cobra"
)

func newCSESCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cses",
		Short: "Track CSES problems and the solved counter",
	}

	cmd.AddCommand(
		newCSESListCmd(app),
		newCSESAddCmd(app),
		newCSESToggleCmd(app),
		newCSESEditCmd(app),
		newCSESRemoveCmd(app),
		newCSESProgressCmd(app),
		newCSESCounterCmd(app, "inc", "Increment the solved counter", app.CSES.Increment),
		newCSESCounterCmd(app, "dec", "Decrement the solved counter", app.CSES.Decrement),
		newCSESResetCmd(app),
	)

	return cmd
}

func newCSESListCmd(app *App) *cobra.Command {
	var filter domain.CSESFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List CSES problems",
		Args:    cobra.NoArgs,
		RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCSESList(app.CSES.List(filter)))
			return nil
		}),
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "Only this category")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Match name, category or notes")

	return cmd
}

func newCSESAddCmd(app *App) *cobra.Command {
	var p domain.CSESProblem
	var solved bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a CSES problem",
		Args:  cobra.NoArgs,
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p.Status = domain.StatusUnsolved
			if solved {
				p.Status = domain.StatusSolved
			}
			added, err := app.CSES.Add(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) #%d\n", added.Name, added.Category, added.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&p.Name, "name", "", "Problem name")
	cmd.Flags().StringVar(&p.Category, "category", "", "Problem category")
	cmd.Flags().StringVar(&p.Notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&p.Approach, "approach", "", "Solution approach")
	cmd.Flags().BoolVar(&solved, "solved", false, "Mark as solved")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newCSESToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a problem between solved and unsolved",
		Args:  cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := app.CSES.Toggle(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Name, formatter.StatusMark(p.Status))
			return nil
		}),
	}
}

func newCSESEditCmd(app *App) *cobra.Command {
	var name, category, status, notes, approach string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a CSES problem",
		Args:  cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var patch service.CSESPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("status") {
				s := domain.ProblemStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}
			if cmd.Flags().Changed("approach") {
				patch.Approach = &approach
			}
			p, err := app.CSES.Edit(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s #%d\n", p.Name, p.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "Problem name")
	cmd.Flags().StringVar(&category, "category", "", "Problem category")
	cmd.Flags().StringVar(&status, "status", "", "solved or unsolved")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&approach, "approach", "", "Solution approach")

	return cmd
}

func newCSESRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a CSES problem",
		Args:    cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.CSES.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d\n", id)
			return nil
		}),
	}
}

func newCSESProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the solved counter",
		Args:  cobra.NoArgs,
		RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := app.CSES.Progress(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCSESProgress(p))
			return nil
		}),
	}
}

func newCSESCounterCmd(app *App, use, short string, op func(context.Context) (domain.CSESProgress, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			p, err := op(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCSESProgress(p))
			return nil
		}),
	}
}

func newCSESResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the solved counter to zero",
		Args:  cobra.NoArgs,
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			ok, err := confirmDestructive(app, yes, "Reset the CSES counter to 0?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			p, err := app.CSES.Reset(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCSESProgress(p))
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
