package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/jobpay/internal/config"
	"github.com/jask/jobpay/internal/database"
	"github.com/jask/jobpay/internal/database/repository"
	"github.com/jask/jobpay/internal/logging"
	"github.com/jask/jobpay/internal/recordmeta"
	"github.com/jask/jobpay/internal/service"
	"github.com/jask/jobpay/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "calc" {
		if err := runCalc(os.Args[2:], cfg.Calculator.Rates(), os.Stdout); err != nil {
			log.Fatalf("calc: %v", err)
		}
		return
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	logger.Info("starting", zap.String("db", cfg.Database.Path), zap.String("config", config.Path()))

	services := tui.Services{
		Applications: &service.JobApplicationService{
			Applications: repository.NewJobApplicationRepo(db),
			Meta:         recordmeta.JobApplication(),
			Log:          logger,
		},
		Maintenance: &service.MaintenanceService{DB: db},
	}

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := runSeed(ctx, os.Args[2:], services.Applications, os.Stdout); err != nil {
			log.Fatalf("seed: %v", err)
		}
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "import" {
		if err := runImport(ctx, services.Applications, os.Stdout); err != nil {
			log.Fatalf("import: %v", err)
		}
		return
	}

	p := tea.NewProgram(tui.New(ctx, cfg, services, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Printf("error: %v\n", err)
	}
}
