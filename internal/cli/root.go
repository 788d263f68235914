package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

const rootLong = `readmegen builds a README.md for your project.

It reads package.json in the project directory, applies any values given as
flags, lets you confirm or edit every field, collects features and
technologies, and renders the result through a Handlebars template.

Values are resolved per field: command-line flag, then package.json, then
the built-in default. Fields given as flags are not asked again.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid flags, missing project name)
  3  - Panic or unexpected system error
  10 - Invalid readmegen.yaml or .env
  12 - User declined to overwrite the existing README
  13 - Template missing or malformed
  14 - README could not be written`

// newRootCmd builds the command tree. The root command itself generates the
// README; unknown flags and extra arguments are ignored.
func newRootCmd() *cobra.Command {
	flags := &generateFlags{}

	rootCmd := &cobra.Command{
		Use:   "readmegen",
		Short: "Generate a personalized README.md file",
		Long:  rootLong,
		Args:  cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceUsage: true,
		// cobra adds --version and honours it anywhere on the command line
		Version: versionLine(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	registerGenerateFlags(rootCmd, flags)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTemplatesCmd())
	return rootCmd
}

// Execute runs the root command. Ctrl+C cancels the context passed to the
// running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
