package cli

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/seolint/seolint/internal/config"
	"github.com/seolint/seolint/internal/hook"
	"github.com/seolint/seolint/internal/logging"
	"github.com/seolint/seolint/internal/rules"
	"github.com/seolint/seolint/pkg/seolint"
)

// loadProjectConfig loads godotenv and the project configuration. A missing
// seolint.yaml yields defaults, never an error.
func loadProjectConfig() (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadOrDefault(config.ProjectDir())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", seolint.ConfigFileName, err)
	}
	return cfg, nil
}

// newDispatcher builds the hook dispatcher from project configuration.
func newDispatcher(cfg *config.ProjectConfig, log seolint.Logger) *hook.Dispatcher {
	return hook.New(hook.Options{
		Rules:    rules.Options{ExtraAIBots: cfg.AIBotsExtra},
		Disabled: cfg.Validators.Disabled,
	}, log)
}

// newLogger returns the console logger honoring the verbose flag.
func newLogger(verbose bool) seolint.Logger {
	return logging.NewConsoleLogger(verbose)
}

// normalizeValidatorName maps user input (meta, Meta, META) onto the catalog
// naming convention.
func normalizeValidatorName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
