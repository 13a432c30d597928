package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seolint/seolint/internal/config"
	"github.com/seolint/seolint/internal/hook"
	"github.com/seolint/seolint/internal/report"
	"github.com/seolint/seolint/internal/rules"
	"github.com/seolint/seolint/pkg/seolint"
)

var hookCmd = &cobra.Command{
	Use:   "hook [validator|stop]",
	Short: "Run as an agent post-tool hook (reads event JSON from stdin)",
	Long: `Process one agent tool-use event and print a hook envelope to stdout.

Reads the event JSON from stdin, validates the touched file with every
applicable rule catalog (or just the named one), and prints exactly one JSON
envelope. Non-mutating tools, unreadable files, and inapplicable files all
produce a skip envelope; only rule findings block.

The hook itself always exits 0 - validation findings are reported through the
envelope, never through the exit code, so a finding can never break the agent
loop.

With the literal argument "stop", acknowledges a stop event instead:
prints {"continue": true} without reading a file.

Examples:
  # Validate with every applicable catalog
  seolint hook < event.json

  # Restrict to the META catalog
  seolint hook meta < event.json

  # Acknowledge a stop event
  seolint hook stop < event.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	log := newLogger(verbose)

	if len(args) == 1 && args[0] == "stop" {
		return printEnvelope(report.Info(""))
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		// Config trouble must not block the agent: log and skip.
		log.Error("config error, skipping validation: %v", err)
		return printEnvelope(report.Skip())
	}

	dispatcher := newDispatcher(cfg, log)

	if len(args) == 1 {
		name := normalizeValidatorName(args[0])
		if _, ok := dispatcher.Catalog(name); !ok {
			log.Error("unknown validator %q, skipping validation", args[0])
			return printEnvelope(report.Skip())
		}
		dispatcher = restrictedDispatcher(cfg, log, name)
	}

	ev, err := hook.ParseEvent(os.Stdin)
	if err != nil {
		log.Verbose("malformed hook event: %v", err)
		return printEnvelope(report.Skip())
	}

	return printEnvelope(dispatcher.Handle(ev))
}

// restrictedDispatcher rebuilds the dispatcher with every catalog but the
// named one disabled.
func restrictedDispatcher(cfg *config.ProjectConfig, log seolint.Logger, only string) *hook.Dispatcher {
	disabled := append([]string{}, cfg.Validators.Disabled...)
	for _, name := range []string{"META", "SCHEMA", "SITEMAP", "AI-SEO", "PERF"} {
		if name != only {
			disabled = append(disabled, name)
		}
	}
	return hook.New(hook.Options{
		Rules:    rules.Options{ExtraAIBots: cfg.AIBotsExtra},
		Disabled: disabled,
	}, log)
}

func printEnvelope(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode hook envelope: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
