// Package sheet models untrusted spreadsheet input and finds where player
// names live inside it.
//
// # Workbook
//
// A Workbook is an ordered list of Sheets, each a ragged grid of text cells.
// Decode builds one from .xlsx (excelize) or .csv content.
//
// # Header Discovery
//
// Discovery is a chain of Strategy values tried in order for each sheet:
//
//   - ExactHeader: the label is a first-row header verbatim.
//   - EmbeddedHeader: a row within the first ten rows below the top contains
//     the label; that row becomes the header.
//   - FuzzyColumn: a first-row header mentions "player" and "name", or is
//     "name".
//
// The first sheet where any strategy hits is used and the rest are ignored.
// When nothing hits, Discover returns an error wrapping ErrSchemaNotFound
// that lists the strategies tried.
//
//	loc, err := sheet.Discover(wb, "Player")
//	table := wb.Sheets[loc.Sheet].Table(loc.HeaderRow)
package sheet
