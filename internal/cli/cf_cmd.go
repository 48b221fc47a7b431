package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/domain"
	"github.com/alexanderramin/cptrack/internal/service"
	"github.com/spf13/cobra"
)

func newCFCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cf",
		Aliases: []string{"codeforces"},
		Short:   "Track Codeforces problems",
	}

	cmd.AddCommand(
		newCFListCmd(app),
		newCFAddCmd(app),
		newCFEditCmd(app),
		newCFRemoveCmd(app),
		newCFSyncCmd(app),
		newCFHandleCmd(app),
	)

	return cmd
}

func newCFListCmd(app *App) *cobra.Command {
	var filter domain.ProblemFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List Codeforces problems",
		Args:    cobra.NoArgs,
		RunE: readRunE(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProblemList(app.Codeforces.List(filter)))
			return nil
		}),
	}

	divisionVar(cmd.Flags(), &filter.Division, `Only this division, e.g. "Div. 2", 2 or edu`)
	cmd.Flags().StringVar(&filter.Index, "index", "", "Only this problem index, e.g. A")
	cmd.Flags().StringVar(&filter.Search, "search", "", "Match contest, name or notes")

	return cmd
}

func newCFAddCmd(app *App) *cobra.Command {
	var p domain.Problem

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a Codeforces problem (interactive form when no flags are given)",
		Args:  cobra.NoArgs,
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("contest") {
				if !app.interactive() {
					return fmt.Errorf("--contest, --index and --name are required on a non-interactive terminal")
				}
				if err := problemForm(&p).Run(); err != nil {
					return err
				}
			}
			added, err := app.Codeforces.Add(ctx, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s (%s) #%d\n",
				added.Contest, added.ProblemID, added.ProblemName, formatter.DivisionBadge(added.Division), added.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&p.Contest, "contest", "", `Contest label, e.g. "Contest 1350"`)
	cmd.Flags().StringVar(&p.ProblemID, "index", "", "Problem index, e.g. A")
	cmd.Flags().StringVar(&p.ProblemName, "name", "", "Problem name")
	divisionVar(cmd.Flags(), &p.Division, "Division (classified from the contest when empty)")
	cmd.Flags().StringVar(&p.Notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&p.Tricks, "tricks", "", "Tricks worth remembering")

	return cmd
}

func newCFEditCmd(app *App) *cobra.Command {
	var contest, index, name, notes, tricks string
	var division domain.Division

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a Codeforces problem",
		Args:  cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var patch service.ProblemPatch
			flags := cmd.Flags()
			if flags.Changed("contest") {
				patch.Contest = &contest
			}
			if flags.Changed("division") {
				patch.Division = &division
			}
			if flags.Changed("index") {
				patch.ProblemID = &index
			}
			if flags.Changed("name") {
				patch.ProblemName = &name
			}
			if flags.Changed("notes") {
				patch.Notes = &notes
			}
			if flags.Changed("tricks") {
				patch.Tricks = &tricks
			}
			p, err := app.Codeforces.Edit(ctx, id, patch)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProblem(p))
			return nil
		}),
	}

	cmd.Flags().StringVar(&contest, "contest", "", "Contest label")
	divisionVar(cmd.Flags(), &division, "Division")
	cmd.Flags().StringVar(&index, "index", "", "Problem index")
	cmd.Flags().StringVar(&name, "name", "", "Problem name")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	cmd.Flags().StringVar(&tricks, "tricks", "", "Tricks")

	return cmd
}

func newCFRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a Codeforces problem",
		Args:    cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Codeforces.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed #%d\n", id)
			return nil
		}),
	}
}

func newCFSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [handle]",
		Short: "Import accepted submissions from Codeforces",
		Long: "Fetch the handle's submissions and record every accepted problem not\n" +
			"already tracked. Without a handle the remembered one is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			handle := ""
			if len(args) == 1 {
				handle = args[0]
			}

			spin := formatter.NewSpinner(cmd.ErrOrStderr(), "Fetching submissions...")
			if app.interactive() {
				spin.Start()
			}
			res, err := app.Sync.Sync(ctx, handle)
			spin.Stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSyncResult(res.Handle, res.Fetched, res.Accepted, res.Added))
			return nil
		}),
	}
}

func newCFHandleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "handle <name>",
		Short: "Remember the Codeforces handle used by sync",
		Args:  cobra.ExactArgs(1),
		RunE: editRunE(app, func(ctx context.Context, cmd *cobra.Command, args []string) error {
			if err := app.Codeforces.SetHandle(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Handle set to %s\n", formatter.StyleBlue.Render(args[0]))
			return nil
		}),
	}
}
