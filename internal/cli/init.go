package cli

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Eshaj20/personal-expense-tracker-cli/internal/config"
	applog "github.com/Eshaj20/personal-expense-tracker-cli/internal/log"
	"github.com/Eshaj20/personal-expense-tracker-cli/internal/service"
	"github.com/Eshaj20/personal-expense-tracker-cli/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// app bundles the pieces every subcommand needs for one invocation.
type app struct {
	cfg     *config.Config
	service *service.ExpenseService
}

// openApp loads and validates configuration, installs the logger and opens
// the store. The caller must Close the returned app on every path.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	applog.SetDefault(applog.New(applog.ComponentCLI, applog.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}))

	repo, err := storage.NewSQLiteRepository(cfg.ExpensesDBPath)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", cfg.ExpensesDBPath, err)
	}

	return &app{
		cfg:     cfg,
		service: service.NewExpenseService(repo),
	}, nil
}

func (a *app) Close() error {
	return a.service.Close()
}
