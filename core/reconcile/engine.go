package reconcile

import (
	"fmt"
	"slices"
)

// Source is one input to Enrich: a name-keyed relation and the attribute
// fields it contributes.
type Source struct {
	// Name identifies the source in match stats. Defaults to Relation.Name.
	Name string
	// Relation is the adapted source. A nil relation contributes only nulls.
	Relation *Relation
	// Fields lists the attribute fields to carry over.
	Fields []string
}

func (s Source) name() string {
	if s.Name != "" || s.Relation == nil {
		return s.Name
	}
	return s.Relation.Name
}

// MatchStat records what one source contributed to an enrichment.
type MatchStat struct {
	Source string `json:"source"`
	// Rows counts records in the source relation.
	Rows int `json:"rows"`
	// Matched counts canonical rows that got at least one non-null field.
	Matched int `json:"matched"`
	// Collisions counts source keys shared by more than one canonical row.
	// Each such key is copied into every canonical row that shares it.
	Collisions int `json:"collisions"`
}

// Enrich left-joins base with each source on normalized_name, in order.
// Every base row is kept; a source's fields are null on rows it did not
// match. The base relation is not modified.
func Enrich(base *Relation, sources []Source) (*Relation, []MatchStat, error) {
	if !base.HasField(FieldNormalizedName) {
		return nil, nil, fmt.Errorf("%w: base relation has no %s field", ErrMissingKey, FieldNormalizedName)
	}

	out := base.Clone()

	keyCounts := make(map[string]int, out.Len())
	for _, rec := range out.Records {
		if key := rec.Text(FieldNormalizedName); key != "" {
			keyCounts[key]++
		}
	}

	stats := make([]MatchStat, 0, len(sources))
	for _, src := range sources {
		for _, f := range src.Fields {
			if out.HasField(f) {
				return nil, nil, fmt.Errorf("%w: source %s field %s already present", ErrFieldConflict, src.name(), f)
			}
		}
		if src.Relation.Len() > 0 && !src.Relation.HasField(FieldNormalizedName) {
			return nil, nil, fmt.Errorf("%w: source %s has no %s field", ErrMissingKey, src.name(), FieldNormalizedName)
		}

		index := indexFirst(src.Relation, FieldNormalizedName)

		stat := MatchStat{Source: src.name(), Rows: src.Relation.Len()}
		for key := range index {
			if keyCounts[key] > 1 {
				stat.Collisions++
			}
		}

		out.Declare(src.Fields...)
		for _, rec := range out.Records {
			match, ok := index[rec.Text(FieldNormalizedName)]
			if !ok {
				continue
			}
			contributed := false
			for _, f := range src.Fields {
				v := match.Value(f)
				rec[f] = v
				if !v.IsNull() {
					contributed = true
				}
			}
			if contributed {
				stat.Matched++
			}
		}
		stats = append(stats, stat)
	}

	return out, stats, nil
}

// indexFirst maps each non-empty key to the first record carrying it.
func indexFirst(rel *Relation, field string) map[string]Record {
	index := make(map[string]Record, rel.Len())
	if rel == nil {
		return index
	}
	for _, rec := range rel.Records {
		key := rec.Text(field)
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = rec
		}
	}
	return index
}

// AttributeFields returns the fields of rel other than the name and key
// fields, in declaration order.
func AttributeFields(rel *Relation) []string {
	if rel == nil {
		return nil
	}
	return slices.DeleteFunc(slices.Clone(rel.Fields), func(f string) bool {
		return f == FieldNameOriginal || f == FieldNormalizedName || f == FieldPlayerID
	})
}
