package reconcile

import (
	"player-enricher/core/names"
	"player-enricher/core/sheet"
)

// DefaultNameLabel is the header label player names are expected under.
const DefaultNameLabel = "Player"

// ColumnMapping renames one source column into a namespaced field.
type ColumnMapping struct {
	// From is the header label in the source, compared after trimming.
	From string `json:"from"`
	// To is the namespaced field name in the relation.
	To string `json:"to"`
}

// SourceSpec describes how to read one tabular source.
type SourceSpec struct {
	// Name identifies the source in reports and relation names.
	Name string `json:"name"`
	// NameLabel is the header label for player names. Defaults to "Player".
	NameLabel string `json:"name_label"`
	// Columns lists the recognized attribute columns. Unlisted columns are
	// not carried into the relation.
	Columns []ColumnMapping `json:"columns"`
}

// Fields returns the namespaced attribute fields of the source.
func (s SourceSpec) Fields() []string {
	out := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, c.To)
	}
	return out
}

func (s SourceSpec) label() string {
	if s.NameLabel == "" {
		return DefaultNameLabel
	}
	return s.NameLabel
}

// AdaptReport describes what Adapt did with one source.
type AdaptReport struct {
	Source string `json:"source"`
	// Location is where the names were found; nil when discovery failed.
	Location *sheet.Location `json:"location,omitempty"`
	// Rows counts records in the resulting relation.
	Rows int `json:"rows"`
	// Duplicates counts rows discarded because their key was already seen.
	Duplicates int `json:"duplicates"`
	// Unnamed counts rows discarded because their name normalized to "".
	Unnamed int `json:"unnamed"`
	// MissingColumns lists mapped columns the source did not provide.
	MissingColumns []string `json:"missing_columns,omitempty"`
	// Err is the recoverable failure that left the relation empty.
	Err error `json:"-"`
}

// Adapt turns a workbook into a relation carrying player_name_original,
// normalized_name and the namespaced fields of spec. Duplicate keys keep
// the first row in source order.
//
// Adapt never fails: a nil workbook or one where no strategy finds the name
// column yields an empty relation with the declared fields, and the reason
// is recorded in the report.
func Adapt(wb *sheet.Workbook, spec SourceSpec, strategies ...sheet.Strategy) (*Relation, AdaptReport) {
	fields := append([]string{FieldNameOriginal, FieldNormalizedName}, spec.Fields()...)
	rel := NewRelation(spec.Name, fields...)
	report := AdaptReport{Source: spec.Name}

	if wb == nil {
		report.Err = ErrSourceAbsent
		return rel, report
	}

	loc, err := sheet.Discover(wb, spec.label(), strategies...)
	if err != nil {
		report.Err = err
		return rel, report
	}
	report.Location = &loc

	table := wb.Sheets[loc.Sheet].Table(loc.HeaderRow)

	columns := make([]int, len(spec.Columns))
	for i, c := range spec.Columns {
		columns[i] = table.Column(c.From)
		if columns[i] < 0 {
			report.MissingColumns = append(report.MissingColumns, c.From)
		}
	}

	seen := make(map[string]struct{}, len(table.Rows))
	for _, row := range table.Rows {
		display := ""
		if loc.NameColumn < len(row) {
			display = row[loc.NameColumn]
		}
		key := names.NormalizeString(display)
		if key == "" {
			report.Unnamed++
			continue
		}
		if _, dup := seen[key]; dup {
			report.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		rec := Record{
			FieldNameOriginal:   String(display),
			FieldNormalizedName: String(key),
		}
		for i, c := range spec.Columns {
			if columns[i] < 0 {
				continue
			}
			rec[c.To] = ParseCell(row[columns[i]])
		}
		rel.Append(rec)
	}

	report.Rows = rel.Len()
	return rel, report
}
