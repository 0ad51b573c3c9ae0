// =============================================================================
// Apology Splitter - Partitioned CSV Writer
// =============================================================================
//
// This module writes each group of records to its own CSV file, named from
// the group key (apology.<COUNTRY>_<REGION>.csv). Rows use the 11-column
// output layout and there is no header row.
//
// FAILURE SEMANTICS:
//   - The first create/write/flush/close failure stops the run. Groups after
//     the failing one are not attempted.
//   - Files written before the failure stay on disk as they are.
//   - Two distinct keys that render to the same file name (country "A_B" +
//     region "C" vs country "A" + region "B_C") are rejected before any
//     file is created, so one group never silently overwrites another.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ginjaninja78/apology/internal/types"
	"github.com/ginjaninja78/apology/pkg/utils"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrFileNameCollision is returned when two groups would share a file.
var ErrFileNameCollision = errors.New("group keys collide on output file name")

// WriteError reports the output file that stopped a write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// =============================================================================
// WRITER
// =============================================================================

// Writer writes grouped records to per-group files.
type Writer struct {
	files  *utils.FileManager
	logger *slog.Logger
}

// New creates a Writer. A nil logger uses slog.Default().
func New(files *utils.FileManager, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{files: files, logger: logger}
}

// FileName returns the output file name for key.
func FileName(key types.GroupKey) string {
	return utils.OutputFileName(key.String())
}

// Plan returns the file name for every group, in write order, without
// touching the file system.
//
// RETURNS:
//   - The file names, one per group key.
//   - ErrFileNameCollision if two keys map to the same name.
func (w *Writer) Plan(groups *types.Groups) ([]string, error) {
	names := make([]string, 0, groups.Len())
	owners := make(map[string]types.GroupKey, groups.Len())

	for _, key := range groups.Keys {
		name := FileName(key)
		if owner, taken := owners[name]; taken {
			return nil, fmt.Errorf("%w: %q (country=%q region=%q) and (country=%q region=%q)",
				ErrFileNameCollision, name, owner.Country, owner.Region, key.Country, key.Region)
		}
		owners[name] = key
		names = append(names, name)
	}

	return names, nil
}

// WriteGroups writes every group to its file.
//
// RETURNS:
//   - The paths written, keyed by group. On failure this holds the files
//     completed before the failing one.
//   - A *WriteError for the failing file, or ErrFileNameCollision.
func (w *Writer) WriteGroups(groups *types.Groups) (map[types.GroupKey]string, error) {
	names, err := w.Plan(groups)
	if err != nil {
		return nil, err
	}

	written := make(map[types.GroupKey]string, len(names))
	for i, key := range groups.Keys {
		records := groups.Records[key]

		path, err := w.writeGroup(names[i], records)
		if err != nil {
			w.logger.Error("failed to write group", "key", key.String(), "path", path, "error", err)
			return written, &WriteError{Path: path, Err: err}
		}

		written[key] = path
		w.logger.Debug("wrote group", "key", key.String(), "path", path, "records", len(records))
	}

	return written, nil
}

// writeGroup writes records to a single file, closing it on every path.
func (w *Writer) writeGroup(name string, records []types.Record) (path string, err error) {
	file, path, err := w.files.Create(name)
	if err != nil {
		return path, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	csvWriter := csv.NewWriter(file)
	for _, record := range records {
		if err := csvWriter.Write(record.Fields()); err != nil {
			return path, fmt.Errorf("failed to write record %s: %w", record.ID, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return path, fmt.Errorf("failed to flush output file: %w", err)
	}

	return path, nil
}
