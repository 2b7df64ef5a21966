package reconcile

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"", Null()},
		{"   ", Null()},
		{"NaN", Null()},
		{"nan", Null()},
		{"5", Value{Kind: KindNumber, Text: "5"}},
		{" 12.50 ", Value{Kind: KindNumber, Text: "12.50"}},
		{"-3", Value{Kind: KindNumber, Text: "-3"}},
		{"1e3", Value{Kind: KindNumber, Text: "1000"}},
		{"007", Value{Kind: KindNumber, Text: "7"}},
		{"WR12", String("WR12")},
		{"Tier 1", String("Tier 1")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCell(tt.raw))
		})
	}
}

func TestNumberAndFloat(t *testing.T) {
	assert.Equal(t, "0.1", Float(0.1).Text)
	assert.True(t, Float(math.NaN()).IsNull())
	assert.True(t, Float(math.Inf(1)).IsNull())
	assert.True(t, Number("abc").IsNull())
	assert.Equal(t, "8000", Number("8000").Text)
}

func TestValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Value{
		"n": Number("8000.25"),
		"s": String("QB"),
		"x": Null(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":8000.25,"s":"QB","x":null}`, string(data))
}

func TestRecord_AbsentVersusNull(t *testing.T) {
	rel := NewRelation("r", "a")
	rel.Append(Record{"a": String("x"), "b": String("dropped")})
	rel.Declare("c")

	rec := rel.Records[0]
	_, ok := rec.Get("b")
	assert.False(t, ok, "undeclared field is absent")

	v, ok := rec.Get("c")
	assert.True(t, ok, "declared field is present")
	assert.True(t, v.IsNull())

	assert.Equal(t, map[string]any{"a": "x"}, rec.Compact())
}

func TestRelation_Clone(t *testing.T) {
	rel := NewRelation("r", "a")
	rel.Append(Record{"a": String("x")})

	cp := rel.Clone()
	cp.Records[0]["a"] = String("y")
	cp.Declare("b")

	assert.Equal(t, "x", rel.Records[0].Text("a"))
	assert.False(t, rel.HasField("b"))
	assert.Nil(t, (*Relation)(nil).Clone())
	assert.Equal(t, 0, (*Relation)(nil).Len())
}
