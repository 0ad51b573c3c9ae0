package csvparser_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/apology/internal/csvparser"
	"github.com/ginjaninja78/apology/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errShortRow = errors.New("short row")

// idDecoder keeps the first column as the record ID and rejects rows with
// fewer than two columns.
var idDecoder = csvparser.RowDecoderFunc(func(row []string) (types.Record, error) {
	if len(row) < 2 {
		return types.Record{}, errShortRow
	}
	return types.Record{ID: row[0], Email: row[1]}, nil
})

func TestRead_PreservesRowOrder(t *testing.T) {
	input := "3,c@x.com\n1,a@x.com\n2,b@x.com\n"

	records, err := csvparser.Read(strings.NewReader(input), idDecoder)

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "3", records[0].ID)
	assert.Equal(t, "1", records[1].ID)
	assert.Equal(t, "2", records[2].ID)
}

func TestRead_FirstRowIsData(t *testing.T) {
	records, err := csvparser.Read(strings.NewReader("id,email\n"), idDecoder)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id", records[0].ID)
}

func TestRead_QuotedFieldsKeepEmbeddedCommas(t *testing.T) {
	input := `7,"Doe, Jane <jane@x.com>"` + "\n"

	records, err := csvparser.Read(strings.NewReader(input), idDecoder)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Doe, Jane <jane@x.com>", records[0].Email)
}

func TestRead_EmptyInput(t *testing.T) {
	records, err := csvparser.Read(strings.NewReader(""), idDecoder)

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRead_DecodeFailureReportsLineAndStops(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"first row", "bad\n1,a@x.com\n", 2},
		{"second row", "1,a@x.com\nbad\n2,b@x.com\n", 3},
		{"last row", "1,a@x.com\n2,b@x.com\n3,c@x.com\nbad\n", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := csvparser.Read(strings.NewReader(tt.input), idDecoder)

			require.Error(t, err)
			assert.Nil(t, records, "no partial results on failure")

			var decodeErr *csvparser.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.wantLine, decodeErr.Line)
			assert.ErrorIs(t, err, errShortRow)
		})
	}
}

func TestRead_MalformedQuotingIsADecodeError(t *testing.T) {
	input := "1,a@x.com\n2,\"unterminated\n"

	records, err := csvparser.Read(strings.NewReader(input), idDecoder)

	require.Error(t, err)
	assert.Nil(t, records)

	var decodeErr *csvparser.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 3, decodeErr.Line)
	assert.ErrorIs(t, err, csv.ErrQuote)
	assert.Contains(t, err.Error(), "line 3:")
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,a@x.com\n2,b@x.com\n"), 0o644))

	records, err := csvparser.ReadFile(path, idDecoder)

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := csvparser.ReadFile(filepath.Join(t.TempDir(), "missing.csv"), idDecoder)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open file")
}
