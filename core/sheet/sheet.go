package sheet

import "strings"

// Sheet is one named grid of text cells. Rows may be ragged.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is an ordered set of sheets. A CSV file decodes into a workbook
// with a single sheet.
type Workbook struct {
	Sheets []Sheet
}

// Cell returns the cell at row r, column c, or "" when out of range.
func (s Sheet) Cell(r, c int) string {
	if r < 0 || r >= len(s.Rows) || c < 0 || c >= len(s.Rows[r]) {
		return ""
	}
	return s.Rows[r][c]
}

// Table is a sheet read with a chosen header row.
type Table struct {
	// Header holds the trimmed header labels.
	Header []string
	// Rows holds the data rows below the header, padded to len(Header).
	Rows [][]string
}

// Table reads the sheet using row headerRow as the header. Rows above the
// header are discarded and blank rows below it are skipped.
func (s Sheet) Table(headerRow int) Table {
	if headerRow < 0 || headerRow >= len(s.Rows) {
		return Table{}
	}

	header := make([]string, len(s.Rows[headerRow]))
	for i, label := range s.Rows[headerRow] {
		header[i] = strings.TrimSpace(label)
	}

	t := Table{Header: header}
	for _, raw := range s.Rows[headerRow+1:] {
		if isBlank(raw) {
			continue
		}
		row := make([]string, len(header))
		copy(row, raw)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Column returns the index of the header labelled exactly label, or -1.
func (t Table) Column(label string) int {
	for i, h := range t.Header {
		if h == label {
			return i
		}
	}
	return -1
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
