// =============================================================================
// Apology Splitter - CSV Parser Module
// =============================================================================
//
// This module reads the recipient export. The export has no header row and a
// fixed positional layout, so the parser does not map columns by name: every
// raw row is handed to a RowDecoder, which turns it into a types.Record.
//
// READ CONTRACT:
//   - Rows are decoded in file order and returned in that order.
//   - The first failing row stops the read. No partial result is returned.
//   - Failures carry a line number. Row N of the file is reported as line
//     N+1, as if a header row had been consumed before the first data row.
//     Downstream tooling matches error reports on these numbers.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/apology/internal/types"
)

// =============================================================================
// DECODER CONTRACT
// =============================================================================

// RowDecoder converts one raw CSV row into a Record.
type RowDecoder interface {
	Decode(row []string) (types.Record, error)
}

// RowDecoderFunc adapts a plain function to RowDecoder.
type RowDecoderFunc func(row []string) (types.Record, error)

// Decode calls f(row).
func (f RowDecoderFunc) Decode(row []string) (types.Record, error) {
	return f(row)
}

// =============================================================================
// ERRORS
// =============================================================================

// DecodeError reports the row that stopped a read.
type DecodeError struct {
	// Line is the reported line number (file row + 1).
	Line int

	// Err is the underlying CSV, I/O or decode failure.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ReadFile opens filePath and reads every record from it.
//
// The file is closed before ReadFile returns, on success and on failure.
func ReadFile(filePath string, decoder RowDecoder) ([]types.Record, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(bufio.NewReader(file), decoder)
}

// Read decodes every row from r.
//
// RETURNS:
//   - The records in input order (an empty, non-nil slice for empty input).
//   - A *DecodeError for the first row that could not be read or decoded.
func Read(r io.Reader, decoder RowDecoder) ([]types.Record, error) {
	csvReader := newReader(r)
	records := []types.Record{}

	// Row 1 is treated as already consumed, so the first data row is
	// reported as line 2.
	line := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &DecodeError{Line: line, Err: unwrapParseError(err)}
		}

		record, err := decoder.Decode(row)
		if err != nil {
			return nil, &DecodeError{Line: line, Err: err}
		}
		records = append(records, record)
	}

	return records, nil
}

// newReader configures a CSV reader for the export dialect: comma
// delimiter, standard double-quote quoting, column count checked by the
// decoder rather than the reader.
func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.FieldsPerRecord = -1
	return reader
}

// unwrapParseError strips the position prefix encoding/csv adds, since the
// DecodeError already carries the line.
func unwrapParseError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) && parseErr.Err != nil {
		return parseErr.Err
	}
	return err
}
