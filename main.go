// =============================================================================
// Apology Splitter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the apology CLI. It reads a recipient
// export, normalizes every row and writes one CSV file per (country, region)
// group.
//
// USAGE:
//   apology <input.csv>          - Split the export into apology.<KEY>.csv files
//   apology report <summary>     - Print a summary workbook from an earlier run
//   apology version              - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core logic (translator, parser, converter, writer)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/apology/cmd"
)

func main() {
	cmd.Execute()
}
