package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/capitan"

	"github.com/jask/signup/internal/audit"
	"github.com/jask/signup/internal/config"
	"github.com/jask/signup/internal/database"
	"github.com/jask/signup/internal/database/repository"
	"github.com/jask/signup/internal/form"
	"github.com/jask/signup/internal/prompt"
	"github.com/jask/signup/internal/service"
	"github.com/jask/signup/internal/tui"
)

func main() {
	plain := flag.Bool("plain", false, "ask with line prompts instead of the full-screen form")
	reset := flag.Bool("reset", false, "delete every stored account and exit")
	initConfig := flag.Bool("init-config", false, "write the effective config to disk and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *initConfig {
		path, err := config.Save(cfg)
		if err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Println(path)
		return
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	accounts := repository.NewAccountRepo(db)

	if *reset {
		maintenance := &service.MaintenanceService{DB: db, Accounts: accounts}
		n, err := maintenance.Reset(ctx)
		if err != nil {
			log.Fatalf("reset: %v", err)
		}
		fmt.Printf("removed %d account(s)\n", n)
		return
	}

	if cfg.Audit.Path != "" {
		closeAudit, err := openAuditLog(cfg.Audit.Path)
		if err != nil {
			log.Printf("warn: audit log disabled: %v", err)
		} else {
			defer closeAudit()
		}
	}
	defer capitan.Shutdown()

	f := form.New()
	detach := audit.Attach(ctx, f)
	defer detach()

	signup := &service.SignupService{Accounts: accounts, BcryptCost: cfg.Security.BcryptCost}

	if *plain {
		if err := runPlain(ctx, f, signup); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return
	}

	app := tui.New(ctx, cfg, f, signup)
	defer app.Close()
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func runPlain(ctx context.Context, f *form.Coordinator, signup *service.SignupService) error {
	creds, err := prompt.Run(ctx, f, prompt.NewSurveyDriver())
	if errors.Is(err, prompt.ErrAborted) {
		return nil
	}
	if err != nil {
		return err
	}
	acct, err := signup.Register(ctx, creds)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if s, ok := service.SuggestEmail(acct.Email); ok {
		fmt.Printf("note: did you mean %s?\n", s)
	}
	fmt.Printf("Welcome aboard, %s! Your account is ready.\n", acct.Email)
	return nil
}

// openAuditLog appends audit lines to path and returns the closer.
func openAuditLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir audit dir: %w", err)
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	audit.Hook(log.New(fh, "", log.LstdFlags|log.LUTC))
	return func() { _ = fh.Close() }, nil
}
