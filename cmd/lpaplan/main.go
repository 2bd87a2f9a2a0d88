package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/cli"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/db"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/roster"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Lipgloss honors NO_COLOR; keep piped output free of ANSI sequences.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	// DB path: env var or default ~/.lpaplan/lpaplan.db
	dbPath := os.Getenv("LPAPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lpaplan", "lpaplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Roster source: a YAML file overrides the DB roster when configured.
	var rosterRepo repository.RosterRepo = repository.NewSQLiteRosterRepo(database)
	if path := os.Getenv("LPAPLAN_ROSTER"); path != "" {
		loaded, err := roster.Load(path)
		if err != nil {
			return fmt.Errorf("loading roster file: %w", err)
		}
		rosterRepo = roster.NewFileProvider(loaded)
	}

	// Overlay store: local SQLite by default, the central plant Postgres
	// when a DSN is configured.
	var auditRepo repository.AuditStatusRepo = repository.NewSQLiteAuditRepo(database)
	if dsn := os.Getenv("LPAPLAN_PG"); dsn != "" {
		pg, err := db.OpenPostgres(dsn)
		if err != nil {
			return fmt.Errorf("opening central audit database: %w", err)
		}
		defer pg.Close()
		auditRepo = repository.NewPostgresAuditRepo(pg)
	}

	var observers []service.UseCaseObserver
	if os.Getenv("LPAPLAN_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Schedule: service.NewScheduleService(rosterRepo, auditRepo),
		Audits:   service.NewAuditService(auditRepo, observers...),
		Stats:    service.NewStatsService(auditRepo),
		Export:   service.NewExportService(rosterRepo, auditRepo),
		Roster:   service.NewRosterService(rosterRepo, uow),
	}

	return cli.NewRootCmd(app).Execute()
}
