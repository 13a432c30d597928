package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `               _ _       _
 ___  ___  ___| (_)_ __ | |_
/ __|/ _ \/ _ \ | | '_ \| __|
\__ \  __/ (_) | | | | | | |_
|___/\___|\___/|_|_|_| |_|\__|`

var rootCmd = &cobra.Command{
	Use:   "seolint",
	Short: "Rule-based SEO and metadata validation",
	Long: asciiLogo + `

seolint inspects source files (markup, templates, JSON-LD, XML sitemaps,
robots.txt, llms.txt) against five rule catalogs and emits structured,
directly-actionable defect reports. It runs standalone or as an agent
post-tool hook, where every finding arrives as a numbered fix instruction.

Validators: META, SCHEMA, SITEMAP, AI-SEO, PERF

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Validation produced one or more errors`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for seolint")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
