package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/seolint/seolint/pkg/seolint"
)

// ErrConfigNotFound is returned when no config file exists in the project.
// Callers check for this with errors.Is(err, config.ErrConfigNotFound) and
// fall back to defaults; a missing config is never fatal.
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional per-project tuning file (seolint.yaml at the
// project root). Every field has a working zero value.
type ProjectConfig struct {
	// Validators lists per-validator toggles.
	Validators ValidatorsConfig `yaml:"validators"`
	// ReportDir is where validation report files are written.
	// Empty means the project root.
	ReportDir string `yaml:"report_dir"`
	// AIBotsExtra extends the built-in AI crawler list checked in robots.txt.
	AIBotsExtra []string `yaml:"ai_bots_extra"`
}

// ValidatorsConfig toggles individual validators off.
type ValidatorsConfig struct {
	// Disabled names validators to skip entirely (case-insensitive:
	// meta, schema, sitemap, ai-seo, perf).
	Disabled []string `yaml:"disabled"`
}

// knownValidators guards against silently ignoring a typo in the disabled
// list.
var knownValidators = map[string]bool{
	"META":    true,
	"SCHEMA":  true,
	"SITEMAP": true,
	"AI-SEO":  true,
	"PERF":    true,
}

// Load reads seolint.yaml from projectDir. A missing file yields
// ErrConfigNotFound; a malformed or invalid one wraps
// seolint.ErrInvalidConfig.
func Load(projectDir string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectDir, seolint.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", seolint.ErrInvalidConfig, configPath, err)
	}

	for _, name := range cfg.Validators.Disabled {
		if !knownValidators[strings.ToUpper(name)] {
			return nil, fmt.Errorf("%w: unknown validator %q in disabled list", seolint.ErrInvalidConfig, name)
		}
	}

	return &cfg, nil
}

// LoadOrDefault loads the project config, substituting defaults when no
// config file exists. Any other load failure is still an error.
func LoadOrDefault(projectDir string) (*ProjectConfig, error) {
	cfg, err := Load(projectDir)
	if errors.Is(err, ErrConfigNotFound) {
		return &ProjectConfig{}, nil
	}
	return cfg, err
}

// ProjectDir resolves the project root: the agent-provided directory when
// set, the working directory otherwise.
func ProjectDir() string {
	if dir := os.Getenv(seolint.ProjectDirEnv); dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
