package reconcile

import (
	"fmt"
	"strings"
)

// JoinMode selects which rows survive identifier reconciliation.
type JoinMode string

const (
	// JoinInner keeps only rows present on both sides.
	JoinInner JoinMode = "inner"
	// JoinLeft keeps every enriched row; valuation fields may be null.
	JoinLeft JoinMode = "left"
)

// ParseJoinMode parses "inner" or "left", case-insensitively. The empty
// string parses as JoinInner.
func ParseJoinMode(s string) (JoinMode, error) {
	switch JoinMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", JoinInner:
		return JoinInner, nil
	case JoinLeft:
		return JoinLeft, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidJoinMode, s)
	}
}

// ReconcileReport summarizes an identifier join.
type ReconcileReport struct {
	Mode JoinMode `json:"mode"`
	// Enriched counts rows on the name-enriched side.
	Enriched int `json:"enriched"`
	// Valuation counts distinct keys on the valuation side.
	Valuation int `json:"valuation"`
	// Matched counts enriched rows that found a valuation.
	Matched int `json:"matched"`
	// Output counts rows in the master relation.
	Output int `json:"output"`
}

// Reconcile joins the enriched relation with the identifier-keyed
// valuation relation on the exact text of key. Valuation rows sharing a
// key keep the first one. Output rows follow enriched order.
func Reconcile(enriched, valuation *Relation, key string, mode JoinMode) (*Relation, ReconcileReport, error) {
	report := ReconcileReport{Mode: mode, Enriched: enriched.Len()}

	if mode != JoinInner && mode != JoinLeft {
		return nil, report, fmt.Errorf("%w: %q", ErrInvalidJoinMode, mode)
	}
	if !enriched.HasField(key) {
		return nil, report, fmt.Errorf("%w: enriched relation has no %s field", ErrMissingKey, key)
	}
	if !valuation.HasField(key) {
		return nil, report, fmt.Errorf("%w: valuation relation has no %s field", ErrMissingKey, key)
	}

	var valueFields []string
	for _, f := range valuation.Fields {
		if f == key {
			continue
		}
		if enriched.HasField(f) {
			return nil, report, fmt.Errorf("%w: valuation field %s already present", ErrFieldConflict, f)
		}
		valueFields = append(valueFields, f)
	}

	index := indexFirst(valuation, key)
	report.Valuation = len(index)

	out := NewRelation("master", enriched.Fields...)
	out.Declare(valueFields...)

	for _, rec := range enriched.Records {
		match, ok := index[rec.Text(key)]
		if ok {
			report.Matched++
		} else if mode == JoinInner {
			continue
		}

		row := rec.Clone()
		for _, f := range valueFields {
			if ok {
				row[f] = match.Value(f)
			} else {
				row[f] = Null()
			}
		}
		out.Append(row)
	}

	report.Output = out.Len()
	return out, report, nil
}
