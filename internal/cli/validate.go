package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seolint/seolint/internal/report"
	"github.com/seolint/seolint/internal/reportfile"
	"github.com/seolint/seolint/pkg/seolint"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate one file against the rule catalogs",
	Long: `Validate a file with every applicable rule catalog and print findings.

Unlike hook mode, validate is meant for humans and CI: findings go to the
terminal (styled when attached to one), and validation errors are reflected
in the exit code.

Examples:
  # Validate with every applicable catalog
  seolint validate src/layouts/BaseHead.astro

  # Force one catalog, regardless of file-type heuristics
  seolint validate public/robots.txt --validator ai-seo

  # Machine-readable results
  seolint validate src/pages/index.astro --json

  # Persist a JSON report alongside terminal output
  seolint validate src/pages/index.astro --report-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var (
	validateJSON      bool
	validateValidator string
	validateReportDir string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Output validation results as JSON")
	validateCmd.Flags().StringVar(&validateValidator, "validator", "", "Run only the named validator (meta, schema, sitemap, ai-seo, perf)")
	validateCmd.Flags().StringVar(&validateReportDir, "report-dir", "", "Write a JSON report file into this directory")
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	verbose := getVerboseFlag(cmd)
	log := newLogger(verbose)

	cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("cannot validate %s: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", seolint.ErrNotApplicable, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filePath, err)
	}
	content := string(data)

	dispatcher := newDispatcher(cfg, log)

	var results []report.Result
	if validateValidator != "" {
		// Explicit validator choice overrides the file-type heuristics.
		name := normalizeValidatorName(validateValidator)
		catalog, ok := dispatcher.Catalog(name)
		if !ok {
			return fmt.Errorf("%w: %q (known: %v)", seolint.ErrUnknownValidator, validateValidator, dispatcher.Names())
		}
		errs, warns := catalog.Validate(content, filePath)
		results = []report.Result{report.New(filePath, catalog.Name, errs, warns)}
	} else {
		results = dispatcher.Results(filePath, content)
	}

	// Flag takes precedence over the configured report directory.
	reportDir := validateReportDir
	if reportDir == "" {
		reportDir = cfg.ReportDir
	}
	if reportDir != "" {
		path, err := reportfile.Write(reportDir, filePath, results)
		if err != nil {
			return err
		}
		log.Info("Report written: %s", path)
	}

	if validateJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printHumanResults(results)
	}

	for i := range results {
		if !results[i].Success {
			return fmt.Errorf("%w: %s", seolint.ErrValidationFailed, filePath)
		}
	}
	return nil
}

// printHumanResults renders results for a terminal, to stderr. Stdout stays
// reserved for machine output (--json).
func printHumanResults(results []report.Result) {
	if len(results) == 0 {
		fmt.Fprintln(os.Stderr, paint(mutedStyle, "ℹ No validators apply to this file"))
		return
	}

	for i := range results {
		r := &results[i]

		switch {
		case !r.Success:
			fmt.Fprintln(os.Stderr, paint(errorStyle, fmt.Sprintf("✗ %s: %d error(s), %d warning(s)", r.Validator, len(r.Errors), len(r.Warnings))))
		case len(r.Warnings) > 0:
			fmt.Fprintln(os.Stderr, paint(warningStyle, fmt.Sprintf("⚠ %s: %d warning(s)", r.Validator, len(r.Warnings))))
		default:
			fmt.Fprintln(os.Stderr, paint(successStyle, report.PassedLine(r.File, r.Validator)))
		}

		for j := range r.Errors {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, paint(errorStyle, fmt.Sprintf("%d.", j+1))+" "+r.Errors[j].Instruction())
		}
		for j := range r.Warnings {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, paint(warningStyle, fmt.Sprintf("%d.", j+1))+" "+r.Warnings[j].Instruction())
		}
		fmt.Fprintln(os.Stderr)
	}
}
