// =============================================================================
// Apology Splitter - Root Command
// =============================================================================
//
// The root command is the split itself: it takes exactly one argument, the
// input file path. Subcommands (report, version) hang off it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (apology <input.csv>)
//   ├── reportCmd (apology report <apology.summary.xlsx>)
//   └── versionCmd (apology version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/apology/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "apology <input.csv>",
	Short: "Split a recipient export into one CSV file per country and region",
	Long: `apology reads a header-less recipient export, normalizes every row and
writes one file per (country, region) group to the current directory.

Normalization:
  - Text fields are trimmed
  - Four-digit legacy country codes are zero-padded and translated to
    ISO-3166 alpha-3 codes (unknown codes are kept as-is)
  - Phone numbers containing "+" are redacted

Output files are named apology.<COUNTRY>_<REGION>.csv and have no header row.

Example Usage:
  apology recipients.csv                 # Split the export
  apology recipients.csv --dry-run       # Show which files would be written
  apology recipients.csv --report        # Also write apology.summary.xlsx`,

	Args: cobra.ExactArgs(1),

	// Errors are printed once by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSplit(cmd, args[0])
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
