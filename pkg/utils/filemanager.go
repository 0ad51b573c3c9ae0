// =============================================================================
// Apology Splitter - File Manager Utility
// =============================================================================
//
// This module owns output file naming and creation. Output names follow a
// fixed template and are not configurable:
//
//   apology.<COUNTRY>_<REGION>.csv   one file per group
//   apology.summary.xlsx             optional summary workbook
//
// The CLI always writes to the current working directory. The directory is
// a field so tests can point it at a temporary directory.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

const (
	// OutputPrefix starts every file the tool writes.
	OutputPrefix = "apology."

	// OutputExtension ends every per-group file.
	OutputExtension = ".csv"

	// ReportFileName is the name of the summary workbook.
	ReportFileName = OutputPrefix + "summary.xlsx"
)

// OutputFileName returns the per-group file name for a rendered group key,
// e.g. "USA_CA" -> "apology.USA_CA.csv".
func OutputFileName(key string) string {
	return OutputPrefix + key + OutputExtension
}

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager resolves and creates output files.
type FileManager struct {
	// OutputDir is the directory output files are created in.
	OutputDir string
}

// NewFileManager creates a FileManager writing into outputDir. An empty
// outputDir means the current working directory.
func NewFileManager(outputDir string) *FileManager {
	if outputDir == "" {
		outputDir = "."
	}
	return &FileManager{OutputDir: outputDir}
}

// OutputPath joins name onto the output directory.
func (fm *FileManager) OutputPath(name string) string {
	return filepath.Join(fm.OutputDir, name)
}

// Create creates (or truncates) the named output file.
//
// RETURNS:
//   - The open file and its path. The caller closes the file.
//   - An error if the file cannot be created.
func (fm *FileManager) Create(name string) (*os.File, string, error) {
	path := fm.OutputPath(name)

	file, err := os.Create(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to create output file: %w", err)
	}

	return file, path, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
