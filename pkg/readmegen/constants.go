package readmegen

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // README generated (or nothing to do)
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (invalid flags, missing project name)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid readmegen.yaml or .env
	ExitApprovalDenied   = 12 // User declined to overwrite the existing file
	ExitGenerationFailed = 13 // Template missing or malformed
	ExitWriteFailed      = 14 // Output file could not be written
)

const (
	// ManifestFileName is the conventional manifest read for metadata defaults.
	ManifestFileName = "package.json"

	// DefaultOutputFileName is the document written when no output is configured.
	DefaultOutputFileName = "README.md"

	// DefaultVersion is used when neither flags nor the manifest provide a version.
	DefaultVersion = "1.0.0"

	// DefaultLicense is the built-in license placeholder.
	DefaultLicense = "TBD"

	// ManifestDefaultLicense is assumed when a readable manifest names no license.
	ManifestDefaultLicense = "MIT"

	// DefaultTemplateName is the embedded template used when none is configured.
	DefaultTemplateName = "basic"
)

// DefaultHostingDomains are the repository hosts whose URLs yield a username
// and repository name.
var DefaultHostingDomains = []string{"github.com"}
