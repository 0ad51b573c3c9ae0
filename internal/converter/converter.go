// =============================================================================
// Apology Splitter - Converter Module
// =============================================================================
//
// This module contains the run pipeline for a single input file. Phases are
// strictly sequential and never overlap:
//
//   1. Read and decode every row into memory
//   2. Group the records by (country, region)
//   3. Write one CSV file per group (or only plan the names on a dry run)
//   4. Optionally write the summary workbook
//
// A failure in any phase ends the run. A read failure means nothing is
// grouped or written; a write failure leaves the files already written.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ginjaninja78/apology/internal/config"
	"github.com/ginjaninja78/apology/internal/csvparser"
	"github.com/ginjaninja78/apology/internal/csvwriter"
	"github.com/ginjaninja78/apology/internal/logging"
	"github.com/ginjaninja78/apology/internal/report"
	"github.com/ginjaninja78/apology/internal/translator"
	"github.com/ginjaninja78/apology/internal/types"
	"github.com/ginjaninja78/apology/pkg/utils"
	"github.com/google/uuid"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing one input file.
type Result struct {
	// RunID labels every log entry of the run.
	RunID string

	// FilePath is the input file.
	FilePath string

	// OutputFiles lists the group files written, in write order. On a dry
	// run it lists the names that would have been written.
	OutputFiles []string

	// ReportFile is the summary workbook path, empty when not written.
	ReportFile string

	// Success indicates whether every phase completed.
	Success bool

	// Error is the failure that ended the run, nil on success.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	RowsRead              int
	Groups                int
	FilesWritten          int
	RedactedPhones        int
	UntranslatedCountries int
	ProcessingTime        time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter runs the pipeline for one input file.
type Converter struct {
	inputPath  string
	config     *config.Config
	translator *translator.Translator
	files      *utils.FileManager
	logger     *slog.Logger
	runID      string
}

// New creates a Converter writing into the current working directory.
// A nil cfg uses config.Default(), a nil tr builds the standard table and a
// nil logger uses slog.Default().
func New(inputPath string, cfg *config.Config, tr *translator.Translator, logger *slog.Logger) *Converter {
	return NewWithFileManager(inputPath, cfg, tr, utils.NewFileManager("."), logger)
}

// NewWithFileManager is New with an explicit output location.
func NewWithFileManager(inputPath string, cfg *config.Config, tr *translator.Translator, files *utils.FileManager, logger *slog.Logger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	if tr == nil {
		tr = translator.New()
	}
	runID := uuid.New().String()
	return &Converter{
		inputPath:  inputPath,
		config:     cfg,
		translator: tr,
		files:      files,
		logger:     logging.WithRun(logger, runID, inputPath),
		runID:      runID,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		RunID:    c.runID,
		FilePath: c.inputPath,
	}

	c.logger.Info("processing file", "dry_run", c.config.DryRun, "report", c.config.WriteReport)

	// =========================================================================
	// STEP 1: READ
	// =========================================================================

	decoder := NewDecoder(c.translator, c.logger)
	records, err := csvparser.ReadFile(c.inputPath, decoder)
	if err != nil {
		result.Error = fmt.Errorf("error reading input: %w", err)
		return c.finish(result, startTime)
	}

	decodeStats := decoder.Stats()
	result.Stats.RowsRead = len(records)
	result.Stats.RedactedPhones = decodeStats.RedactedPhones
	result.Stats.UntranslatedCountries = decodeStats.UntranslatedCountries
	c.logger.Debug("read records", "rows", len(records),
		"redacted_phones", decodeStats.RedactedPhones,
		"untranslated_countries", decodeStats.UntranslatedCountries)

	// =========================================================================
	// STEP 2: GROUP
	// =========================================================================

	groups := Group(records)
	result.Stats.Groups = groups.Len()
	c.logger.Debug("grouped records", "groups", groups.Len())

	// =========================================================================
	// STEP 3: WRITE
	// =========================================================================

	writer := csvwriter.New(c.files, c.logger)
	var written map[types.GroupKey]string

	if c.config.DryRun {
		names, err := writer.Plan(groups)
		if err != nil {
			result.Error = fmt.Errorf("failed to group records: %w", err)
			return c.finish(result, startTime)
		}
		result.OutputFiles = names
		for _, name := range names {
			c.logger.Info("would write file", "file", name)
		}
	} else {
		written, err = writer.WriteGroups(groups)
		result.Stats.FilesWritten = len(written)
		for _, key := range groups.Keys {
			if path, ok := written[key]; ok {
				result.OutputFiles = append(result.OutputFiles, path)
			}
		}
		if err != nil {
			result.Error = fmt.Errorf("failed to group records: %w", err)
			return c.finish(result, startTime)
		}
	}

	// =========================================================================
	// STEP 4: REPORT
	// =========================================================================

	if c.config.WriteReport && !c.config.DryRun {
		reportPath := c.files.OutputPath(utils.ReportFileName)
		if err := report.Write(reportPath, report.Build(groups, written)); err != nil {
			result.Error = fmt.Errorf("failed to write report: %w", err)
			return c.finish(result, startTime)
		}
		result.ReportFile = reportPath
	}

	result.Success = true
	return c.finish(result, startTime)
}

// finish stamps the processing time and logs the outcome of the run.
func (c *Converter) finish(result Result, startTime time.Time) Result {
	result.Stats.ProcessingTime = time.Since(startTime)

	if result.Error != nil {
		c.logger.Error("run failed", "error", result.Error, "files_written", result.Stats.FilesWritten)
		return result
	}

	c.logger.Info("run complete",
		"rows", result.Stats.RowsRead,
		"groups", result.Stats.Groups,
		"files_written", result.Stats.FilesWritten)
	return result
}
