package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFormat is returned by Decode for extensions it cannot read.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Extensions lists the file extensions Decode understands.
var Extensions = []string{".xlsx", ".csv"}

// Decode reads a workbook, picking the decoder from the file extension of
// name.
func Decode(name string, r io.Reader) (*Workbook, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx":
		return ReadXLSX(r)
	case ".csv":
		return ReadCSV(strings.TrimSuffix(path.Base(name), path.Ext(name)), r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// ReadXLSX decodes an Office Open XML workbook. Cells are read as their raw
// values so numeric formatting does not leak into the text.
func ReadXLSX(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}

// ReadCSV decodes a comma separated file into a single-sheet workbook.
func ReadCSV(name string, r io.Reader) (*Workbook, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return &Workbook{Sheets: []Sheet{{Name: name, Rows: rows}}}, nil
}
