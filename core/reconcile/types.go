package reconcile

import (
	"encoding/json"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Well-known field names shared by every relation in a run.
const (
	// FieldPlayerID holds the stable external identifier.
	FieldPlayerID = "player_id"
	// FieldNormalizedName holds the name matching key.
	FieldNormalizedName = "normalized_name"
	// FieldNameOriginal holds the display name as read from a source.
	FieldNameOriginal = "player_name_original"
)

// Kind is the type of a Value.
type Kind uint8

const (
	// KindNull marks a declared field with no value.
	KindNull Kind = iota
	// KindString marks free text.
	KindString
	// KindNumber marks a finite number kept as exact decimal text.
	KindNumber
)

// Value is a single typed cell. Numbers are carried as decimal text so they
// are never rounded through a binary float on their way to the sink.
type Value struct {
	Kind Kind
	Text string
}

// Null returns the null value.
func Null() Value { return Value{Kind: KindNull} }

// String returns a text value.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Number returns a numeric value from decimal text. Text that is not a
// finite number yields Null.
func Number(text string) Value {
	text = strings.TrimSpace(text)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	if jsonNumber.MatchString(text) {
		return Value{Kind: KindNumber, Text: text}
	}
	return Value{Kind: KindNumber, Text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Float returns a numeric value from a float. NaN and infinities yield Null.
func Float(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return Value{Kind: KindNumber, Text: strconv.FormatFloat(f, 'f', -1, 64)}
}

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// ParseCell types a raw spreadsheet cell: blank and "nan" cells are null,
// numeric cells are numbers and anything else is text.
func ParseCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return Null()
	}
	if v := Number(s); v.Kind == KindNumber {
		return v
	}
	return String(s)
}

// IsNull reports whether v carries no value.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Interface returns v as a JSON-ready Go value: nil, string or json.Number.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString:
		return v.Text
	case KindNumber:
		return json.Number(v.Text)
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// Record is one row of a relation. A field missing from the map is absent,
// which is distinct from a field present with a Null value.
type Record map[string]Value

// Get returns the value of field and whether the field is present.
func (r Record) Get(field string) (Value, bool) {
	v, ok := r[field]
	return v, ok
}

// Value returns the value of field, or Null when absent.
func (r Record) Value(field string) Value {
	return r[field]
}

// Text returns the text of field, or "" when absent or null.
func (r Record) Text(field string) string {
	return r[field].Text
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Compact returns the non-null fields of r as JSON-ready values.
func (r Record) Compact() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		if v.IsNull() {
			continue
		}
		out[k] = v.Interface()
	}
	return out
}

// Relation is an ordered set of records sharing a declared field set.
// Every record carries every declared field, possibly as Null.
type Relation struct {
	// Name identifies the source of the relation.
	Name string `json:"name"`
	// Fields is the declared field set, in declaration order.
	Fields []string `json:"fields"`
	// Records holds the rows in source order.
	Records []Record `json:"records"`
}

// NewRelation returns an empty relation with the given declared fields.
func NewRelation(name string, fields ...string) *Relation {
	r := &Relation{Name: name}
	r.Declare(fields...)
	return r
}

// Len returns the number of records. A nil relation is empty.
func (r *Relation) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Records)
}

// HasField reports whether field is declared.
func (r *Relation) HasField(field string) bool {
	return r != nil && slices.Contains(r.Fields, field)
}

// Declare adds fields to the declared set, skipping ones already present,
// and backfills them as Null on existing records.
func (r *Relation) Declare(fields ...string) {
	for _, f := range fields {
		if slices.Contains(r.Fields, f) {
			continue
		}
		r.Fields = append(r.Fields, f)
		for _, rec := range r.Records {
			if _, ok := rec[f]; !ok {
				rec[f] = Null()
			}
		}
	}
}

// Append adds a record, keeping only declared fields and filling missing
// ones with Null.
func (r *Relation) Append(rec Record) {
	row := make(Record, len(r.Fields))
	for _, f := range r.Fields {
		if v, ok := rec[f]; ok {
			row[f] = v
		} else {
			row[f] = Null()
		}
	}
	r.Records = append(r.Records, row)
}

// Clone returns a deep copy of r.
func (r *Relation) Clone() *Relation {
	if r == nil {
		return nil
	}
	out := &Relation{Name: r.Name, Fields: slices.Clone(r.Fields), Records: make([]Record, len(r.Records))}
	for i, rec := range r.Records {
		out.Records[i] = rec.Clone()
	}
	return out
}
