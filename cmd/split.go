// =============================================================================
// Apology Splitter - Split Command
// =============================================================================
//
// This file holds the root command's run function and its local flags.
//
// FLAGS:
//   --dry-run : Read and group the input, list the files, write nothing
//   --report  : Also write apology.summary.xlsx
//
// PROCESSING PIPELINE:
//   1. Load configuration (file, then flags)
//   2. Set up logging
//   3. Build the country code table
//   4. Run the converter: read -> group -> write -> report
//   5. Print a summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ginjaninja78/apology/internal/config"
	"github.com/ginjaninja78/apology/internal/converter"
	"github.com/ginjaninja78/apology/internal/logging"
	"github.com/ginjaninja78/apology/internal/translator"
	"github.com/spf13/cobra"
)

// dryRun lists output files without writing them.
var dryRun bool

// writeReport writes the summary workbook.
var writeReport bool

func init() {
	rootCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Read and group the input without writing output files",
	)

	rootCmd.Flags().BoolVar(
		&writeReport,
		"report",
		false,
		"Write apology.summary.xlsx after the group files",
	)
}

// runSplit processes one input file.
func runSplit(cmd *cobra.Command, inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(flagOverrides(cmd))

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	// The table is built once and shared read-only for the whole run.
	tr := translator.New()

	result := converter.New(inputPath, cfg, tr, logger).Run()
	if result.Error != nil {
		return result.Error
	}

	printSummary(cmd, cfg, result)
	return nil
}

// flagOverrides collects only the flags the user actually set, so that
// unset flags do not clobber config file values.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	overrides := config.Overrides{Verbose: verbose}
	if cmd.Flags().Changed("dry-run") {
		overrides.DryRun = &dryRun
	}
	if cmd.Flags().Changed("report") {
		overrides.WriteReport = &writeReport
	}
	return overrides
}

func printSummary(cmd *cobra.Command, cfg *config.Config, result converter.Result) {
	out := cmd.OutOrStdout()

	verb := "Wrote"
	if cfg.DryRun {
		verb = "Would write"
	}

	fmt.Fprintf(out, "Records read:    %d\n", result.Stats.RowsRead)
	fmt.Fprintf(out, "Groups:          %d\n", result.Stats.Groups)
	fmt.Fprintf(out, "Phones redacted: %d\n", result.Stats.RedactedPhones)
	fmt.Fprintf(out, "Untranslated:    %d\n", result.Stats.UntranslatedCountries)
	fmt.Fprintf(out, "%s %d file(s):\n", verb, len(result.OutputFiles))
	for _, file := range result.OutputFiles {
		fmt.Fprintf(out, "  %s\n", filepath.Base(file))
	}
	if result.ReportFile != "" {
		fmt.Fprintf(out, "Report:          %s\n", filepath.Base(result.ReportFile))
	}
	fmt.Fprintf(out, "Time elapsed:    %s\n", result.Stats.ProcessingTime)
}
