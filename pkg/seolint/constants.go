package seolint

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Validation passed or file was not applicable
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid seolint.yaml or parameters
	ExitValidationFailed = 20 // Validation produced one or more errors
)

const (
	// ConfigFileName is the project configuration file seolint looks for
	// in the project root.
	ConfigFileName = "seolint.yaml"

	// ProjectDirEnv is the environment variable naming the project root.
	// The hook host sets this before invoking seolint.
	ProjectDirEnv = "CLAUDE_PROJECT_DIR"

	// MaxElementPreviewLength is the maximum number of characters shown
	// when embedding an observed value (a URL, a title) in an error element
	// label. Prevents overwhelming feedback with long attribute values.
	MaxElementPreviewLength = 30

	// ReportFilePrefix is the filename prefix for written report files.
	ReportFilePrefix = "seo-report"
)
