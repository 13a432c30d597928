package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seolint/seolint/internal/config"
	"github.com/seolint/seolint/internal/logging"
)

func TestRootCommandRegistration(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"hook", "validate", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
	assert.True(t, rootCmd.SilenceUsage)
}

func TestNormalizeValidatorName(t *testing.T) {
	assert.Equal(t, "META", normalizeValidatorName("meta"))
	assert.Equal(t, "AI-SEO", normalizeValidatorName(" ai-seo "))
	assert.Equal(t, "PERF", normalizeValidatorName("PERF"))
}

func TestNewDispatcherHonorsConfig(t *testing.T) {
	cfg := &config.ProjectConfig{
		Validators:  config.ValidatorsConfig{Disabled: []string{"perf", "schema"}},
		AIBotsExtra: []string{"FooBot"},
	}

	d := newDispatcher(cfg, logging.NewNullLogger())
	assert.Equal(t, []string{"META", "SITEMAP", "AI-SEO"}, d.Names())
}

func TestRestrictedDispatcher(t *testing.T) {
	d := restrictedDispatcher(&config.ProjectConfig{}, logging.NewNullLogger(), "META")
	assert.Equal(t, []string{"META"}, d.Names())

	_, ok := d.Catalog("SITEMAP")
	assert.False(t, ok)
}

func TestRestrictedDispatcherKeepsConfigDisables(t *testing.T) {
	cfg := &config.ProjectConfig{
		Validators: config.ValidatorsConfig{Disabled: []string{"meta"}},
	}

	// Restricting to a validator the config disabled yields no catalogs at
	// all; the config wins.
	d := restrictedDispatcher(cfg, logging.NewNullLogger(), "META")
	require.Empty(t, d.Names())
}
