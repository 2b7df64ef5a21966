package reconcile

import (
	"fmt"
	"testing"

	"player-enricher/core/names"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryOf(rows ...[2]string) *Relation {
	rel := NewRelation("registry", FieldPlayerID, "full_name", FieldNormalizedName)
	for _, r := range rows {
		rel.Append(Record{
			FieldPlayerID:       String(r[0]),
			"full_name":         String(r[1]),
			FieldNormalizedName: String(names.NormalizeString(r[1])),
		})
	}
	return rel
}

func sourceOf(name, field string, rows ...[2]string) *Relation {
	rel := NewRelation(name, FieldNameOriginal, FieldNormalizedName, field)
	for _, r := range rows {
		rel.Append(Record{
			FieldNameOriginal:   String(r[0]),
			FieldNormalizedName: String(names.NormalizeString(r[0])),
			field:               ParseCell(r[1]),
		})
	}
	return rel
}

func TestEnrich_LeftJoinComposes(t *testing.T) {
	base := registryOf([2]string{"1", "Justin Herbert"}, [2]string{"2", "Josh Allen"}, [2]string{"3", "Nobody Known"})
	a := sourceOf("a", "a_rank", [2]string{"Justin Herbert", "5"}, [2]string{"Josh Allen", "1"})
	b := sourceOf("b", "b_rank", [2]string{"Josh Allen", "2"})

	out, stats, err := Enrich(base, []Source{
		{Relation: a, Fields: []string{"a_rank"}},
		{Relation: b, Fields: []string{"b_rank"}},
	})
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())

	assert.Equal(t, "5", out.Records[0].Text("a_rank"))
	assert.True(t, out.Records[0].Value("b_rank").IsNull())
	assert.Equal(t, "1", out.Records[1].Text("a_rank"))
	assert.Equal(t, "2", out.Records[1].Text("b_rank"))
	assert.True(t, out.Records[2].Value("a_rank").IsNull())

	assert.Equal(t, []MatchStat{
		{Source: "a", Rows: 2, Matched: 2},
		{Source: "b", Rows: 1, Matched: 1},
	}, stats)

	assert.False(t, base.HasField("a_rank"), "base relation is untouched")
}

func TestEnrich_PreservesRowCount(t *testing.T) {
	for n := 0; n < 5; n++ {
		var rows [][2]string
		for i := 0; i < n; i++ {
			rows = append(rows, [2]string{fmt.Sprint(i), fmt.Sprintf("Player %d", i)})
		}
		base := registryOf(rows...)

		var sources []Source
		for s := 0; s < 3; s++ {
			field := fmt.Sprintf("s%d", s)
			sources = append(sources, Source{
				Relation: sourceOf(field, field, [2]string{"Player 0", "1"}, [2]string{"Player 0", "2"}, [2]string{"Stranger", "3"}),
				Fields:   []string{field},
			})
		}
		sources = append(sources, Source{Name: "absent", Fields: []string{"absent_rank"}})

		out, _, err := Enrich(base, sources)
		require.NoError(t, err)
		assert.Equal(t, n, out.Len())
	}
}

func TestEnrich_MatchCountIgnoresNullAttributes(t *testing.T) {
	base := registryOf([2]string{"1", "Josh Allen"})
	src := sourceOf("a", "a_rank", [2]string{"Josh Allen", ""})

	out, stats, err := Enrich(base, []Source{{Relation: src, Fields: []string{"a_rank"}}})
	require.NoError(t, err)
	assert.Equal(t, 0, stats[0].Matched)
	assert.True(t, out.Records[0].Value("a_rank").IsNull())
}

func TestEnrich_CollisionFansOut(t *testing.T) {
	base := registryOf([2]string{"1", "Mike Williams"}, [2]string{"2", "Mike Williams"})
	src := sourceOf("a", "a_rank", [2]string{"Mike Williams", "50"})

	out, stats, err := Enrich(base, []Source{{Relation: src, Fields: []string{"a_rank"}}})
	require.NoError(t, err)
	assert.Equal(t, "50", out.Records[0].Text("a_rank"))
	assert.Equal(t, "50", out.Records[1].Text("a_rank"))
	assert.Equal(t, 1, stats[0].Collisions)
	assert.Equal(t, 2, stats[0].Matched)
}

func TestEnrich_Errors(t *testing.T) {
	base := registryOf([2]string{"1", "Josh Allen"})

	_, _, err := Enrich(base, []Source{{Name: "dup", Fields: []string{"full_name"}}})
	assert.ErrorIs(t, err, ErrFieldConflict)

	_, _, err = Enrich(NewRelation("bare", FieldPlayerID), nil)
	assert.ErrorIs(t, err, ErrMissingKey)

	keyless := NewRelation("keyless", "a_rank")
	keyless.Append(Record{"a_rank": Number("1")})
	_, _, err = Enrich(base, []Source{{Relation: keyless, Fields: []string{"a_rank"}}})
	assert.ErrorIs(t, err, ErrMissingKey)
}

func TestAttributeFields(t *testing.T) {
	rel := NewRelation("x", FieldPlayerID, FieldNameOriginal, FieldNormalizedName, "tier", "rank")
	assert.Equal(t, []string{"tier", "rank"}, AttributeFields(rel))
	assert.Equal(t, []string{FieldPlayerID}, rel.Fields[:1], "input is not modified")
}
