package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alexanderramin/cptrack/internal/access"
	"github.com/alexanderramin/cptrack/internal/cli"
	"github.com/alexanderramin/cptrack/internal/codeforces"
	"github.com/alexanderramin/cptrack/internal/config"
	"github.com/alexanderramin/cptrack/internal/docstore"
	"github.com/alexanderramin/cptrack/internal/repository"
	"github.com/alexanderramin/cptrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Use-case events go to the log file when one is configured.
	var logOut io.Writer = os.Stderr
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	observer := service.NewLogUseCaseObserver(logOut, cfg.Log.Level)

	store, err := docstore.Open(ctx, cfg.Store.Options())
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}
	defer store.Close()

	// Wire repositories
	stateRepo := repository.NewDocStateRepo(store)
	progressRepo := repository.NewDocCSESProgressRepo(store, cfg.CSESTotal)
	taskRepo := repository.NewDocTaskListRepo(store)

	session := service.NewSession(stateRepo, cfg.Courses, service.WithObserver(observer))
	session.Load(ctx)

	client, err := codeforces.NewClient(cfg.Codeforces.Endpoint, cfg.Codeforces.Timeout())
	if err != nil {
		return fmt.Errorf("configuring codeforces client: %w", err)
	}

	guard, err := access.NewGuard(cfg.Edit.PasswordHash)
	if err != nil {
		return err
	}

	// Wire services
	csesSvc := service.NewCSESService(session, progressRepo)
	app := &cli.App{
		CSES:       csesSvc,
		Codeforces: service.NewCodeforcesService(session),
		Sync:       service.NewSyncService(session, client, cfg.Codeforces.MaxSubmissions, observer),
		Courses:    service.NewCourseService(session),
		Routine:    service.NewRoutineService(session),
		Tasks:      service.NewTaskService(session, taskRepo),
		Theme:      service.NewThemeService(session),
		Status:     service.NewStatusService(session, progressRepo),
		Health:     session,

		Guard:    guard,
		Password: cfg.Edit.Password,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The counter document is created on first run; a failure here is
	// already recorded on the session and reported after the command.
	_, _ = csesSvc.Progress(ctx)

	return cli.ExecuteContext(ctx, cli.NewRootCmd(app), app)
}
