// =============================================================================
// Apology Splitter - Summary Workbook
// =============================================================================
//
// This module writes an optional XLSX summary of a run: one row per group
// with the number of records and the file they were written to. It is
// produced only when reporting is enabled and always uses the fixed name
// apology.summary.xlsx.
//
// SHEET LAYOUT ("Groups"):
//
//   | Key    | Country | Region | Records | File               |
//   |--------|---------|--------|---------|--------------------|
//   | USA_IL | USA     | IL     | 2       | apology.USA_IL.csv |
//   | ...    |         |        |         |                    |
//   | TOTAL  |         |        | 7       |                    |
//
// =============================================================================

package report

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ginjaninja78/apology/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the worksheet holding the summary.
	SheetName = "Groups"

	// TotalLabel marks the totals row in the Key column.
	TotalLabel = "TOTAL"
)

var header = []interface{}{"Key", "Country", "Region", "Records", "File"}

// Row is one group's line in the summary.
type Row struct {
	Key     string
	Country string
	Region  string
	Records int
	File    string
}

// Build returns one Row per group in write order. files maps a group to the
// path it was written to; groups without an entry get an empty File (dry
// runs plan names but write nothing).
func Build(groups *types.Groups, files map[types.GroupKey]string) []Row {
	rows := make([]Row, 0, groups.Len())
	for _, key := range groups.Keys {
		file := ""
		if path, ok := files[key]; ok {
			file = filepath.Base(path)
		}
		rows = append(rows, Row{
			Key:     key.String(),
			Country: key.Country,
			Region:  key.Region,
			Records: len(groups.Records[key]),
			File:    file,
		})
	}
	return rows
}

// Write saves rows to a new workbook at path, followed by a totals row.
func Write(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, 1, header); err != nil {
		return err
	}

	total := 0
	for i, row := range rows {
		values := []interface{}{row.Key, row.Country, row.Region, row.Records, row.File}
		if err := setRow(f, i+2, values); err != nil {
			return err
		}
		total += row.Records
	}

	if err := setRow(f, len(rows)+2, []interface{}{TotalLabel, "", "", total, ""}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, rowNumber int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return fmt.Errorf("invalid report row %d: %w", rowNumber, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write report row %d: %w", rowNumber, err)
	}
	return nil
}

// Read loads the group rows from a summary workbook. The header and totals
// rows are skipped.
func Read(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	rows := []Row{}
	for i := 1; i < len(sheetRows); i++ {
		cells := sheetRows[i]
		if len(cells) == 0 || cells[0] == TotalLabel {
			continue
		}

		row, err := parseRow(cells)
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseRow converts sheet cells into a Row. GetRows trims trailing empty
// cells, so short rows are padded.
func parseRow(cells []string) (Row, error) {
	padded := make([]string, len(header))
	copy(padded, cells)

	count, err := strconv.Atoi(padded[3])
	if err != nil {
		return Row{}, fmt.Errorf("invalid record count %q: %w", padded[3], err)
	}

	return Row{
		Key:     padded[0],
		Country: padded[1],
		Region:  padded[2],
		Records: count,
		File:    padded[4],
	}, nil
}
