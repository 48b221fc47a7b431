package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/cptrack/internal/access"
	"github.com/alexanderramin/cptrack/internal/cli/formatter"
	"github.com/alexanderramin/cptrack/internal/service"
	"github.com/spf13/cobra"
)

// StoreHealth reports the most recent persistence failure, if any.
type StoreHealth interface {
	LastStoreError() error
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	CSES       service.CSESService
	Codeforces service.CodeforcesService
	Sync       service.SyncService
	Courses    service.CourseService
	Routine    service.RoutineService
	Tasks      service.TaskService
	Theme      service.ThemeService
	Status     service.StatusService
	Health     StoreHealth

	Guard *access.Guard
	// Password is the default for --password, usually CPTRACK_EDIT_PASSWORD.
	Password string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh prompt.
	Confirm func(title string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "cptrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "cptrack",
		Short:         "Competitive programming progress tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			formatter.ApplyTheme(app.Theme.Current())
		},
	}

	root.PersistentFlags().String("password", app.Password, "Edit password when an edit hash is configured")

	root.AddCommand(
		newStatusCmd(app),
		newUICmd(app),
		newCSESCmd(app),
		newCFCmd(app),
		newCourseCmd(app),
		newRoutineCmd(app),
		newTaskCmd(app),
		newThemeCmd(app),
		newHashPasswordCmd(),
	)

	return root
}

// ExecuteContext runs root and then warns about any recorded store failure.
// The warning is printed whether or not the command itself failed.
func ExecuteContext(ctx context.Context, root *cobra.Command, app *App) error {
	err := root.ExecuteContext(ctx)
	warnStoreError(root.ErrOrStderr(), app.Health)
	return err
}

// warnStoreError tells the user their last change may not have been saved.
// Mutations never fail on a store write, so this is the only signal.
func warnStoreError(w io.Writer, health StoreHealth) {
	if health == nil {
		return
	}
	if err := health.LastStoreError(); err != nil {
		fmt.Fprintln(w, formatter.Warn("changes may not be saved: "+err.Error()))
	}
}

// editRunE gates a mutating command behind the edit guard.
func editRunE(app *App, run func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		if err := app.Guard.Check(password); err != nil {
			return err
		}
		return run(cmd.Context(), cmd, args)
	}
}

// readRunE adapts a read-only command.
func readRunE(run func(ctx context.Context, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd, args)
	}
}
