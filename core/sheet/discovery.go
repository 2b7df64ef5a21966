package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaNotFound is returned when no strategy locates the name column in
// any sheet of a workbook.
var ErrSchemaNotFound = errors.New("schema not found")

// Location is where player names live inside a workbook.
type Location struct {
	// Sheet is the index of the sheet in the workbook.
	Sheet int `json:"sheet"`
	// SheetName is the name of that sheet.
	SheetName string `json:"sheet_name"`
	// HeaderRow is the zero-based row holding the column labels.
	HeaderRow int `json:"header_row"`
	// NameColumn is the zero-based column holding display names.
	NameColumn int `json:"name_column"`
	// Strategy names the strategy that produced the location.
	Strategy string `json:"strategy"`
}

// Strategy inspects one sheet and reports where the name column is, if it
// can tell.
type Strategy interface {
	Name() string
	Locate(s Sheet, label string) (Location, bool)
}

// ExactHeader matches when label is one of the first row's cells verbatim.
type ExactHeader struct{}

func (ExactHeader) Name() string { return "exact_header" }

func (ExactHeader) Locate(s Sheet, label string) (Location, bool) {
	if len(s.Rows) == 0 {
		return Location{}, false
	}
	for c, cell := range s.Rows[0] {
		if cell == label {
			return Location{HeaderRow: 0, NameColumn: c}, true
		}
	}
	return Location{}, false
}

// EmbeddedHeader finds a header row sitting below title or note rows. The
// MaxScan rows following the first row are searched for a cell containing
// label, case-insensitively, and the first such row becomes the header.
type EmbeddedHeader struct {
	MaxScan int
}

func (EmbeddedHeader) Name() string { return "embedded_header" }

func (e EmbeddedHeader) Locate(s Sheet, label string) (Location, bool) {
	maxScan := e.MaxScan
	if maxScan <= 0 {
		maxScan = 10
	}
	needle := strings.ToLower(label)

	for r := 1; r <= maxScan && r < len(s.Rows); r++ {
		match := -1
		for c, cell := range s.Rows[r] {
			trimmed := strings.TrimSpace(cell)
			if trimmed == label {
				match = c
				break
			}
			if match < 0 && strings.Contains(strings.ToLower(cell), needle) {
				match = c
			}
		}
		if match >= 0 {
			return Location{HeaderRow: r, NameColumn: match}, true
		}
	}
	return Location{}, false
}

// FuzzyColumn matches a first-row header that mentions both "player" and
// "name", or is just "name".
type FuzzyColumn struct{}

func (FuzzyColumn) Name() string { return "fuzzy_column" }

func (FuzzyColumn) Locate(s Sheet, _ string) (Location, bool) {
	if len(s.Rows) == 0 {
		return Location{}, false
	}
	for c, cell := range s.Rows[0] {
		lower := strings.ToLower(cell)
		if (strings.Contains(lower, "player") && strings.Contains(lower, "name")) || lower == "name" {
			return Location{HeaderRow: 0, NameColumn: c}, true
		}
	}
	return Location{}, false
}

// DefaultStrategies returns the standard chain: exact header, embedded
// header within the first ten rows, fuzzy column name.
func DefaultStrategies() []Strategy {
	return []Strategy{ExactHeader{}, EmbeddedHeader{MaxScan: 10}, FuzzyColumn{}}
}

// Discover walks the sheets in order and, within each sheet, the strategies
// in order. The first hit wins; later sheets are never inspected once a
// sheet matched. With no strategies given, DefaultStrategies is used.
func Discover(wb *Workbook, label string, strategies ...Strategy) (Location, error) {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}

	if wb != nil {
		for i, s := range wb.Sheets {
			for _, st := range strategies {
				loc, ok := st.Locate(s, label)
				if !ok {
					continue
				}
				loc.Sheet = i
				loc.SheetName = s.Name
				loc.Strategy = st.Name()
				return loc, nil
			}
		}
	}

	return Location{}, fmt.Errorf("%w: label %q, tried %s", ErrSchemaNotFound, label, strings.Join(StrategyNames(strategies), ", "))
}

// StrategyNames lists the names of the given strategies.
func StrategyNames(strategies []Strategy) []string {
	out := make([]string, len(strategies))
	for i, st := range strategies {
		out[i] = st.Name()
	}
	return out
}
