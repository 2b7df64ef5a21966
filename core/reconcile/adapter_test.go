package reconcile

import (
	"testing"

	"player-enricher/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var superflexSpec = SourceSpec{
	Name: "superflex",
	Columns: []ColumnMapping{
		{From: "Overall", To: "overall_rank"},
		{From: "Tier", To: "tier"},
	},
}

func TestAdapt_ExactHeader(t *testing.T) {
	wb := &sheet.Workbook{Sheets: []sheet.Sheet{{
		Name: "Rankings",
		Rows: [][]string{
			{"Player", " Overall ", "Tier", "Notes"},
			{"Justin Herbert", "5", "1", "ignore me"},
			{"D'Andre Swift", "40", "", ""},
		},
	}}}

	rel, report := Adapt(wb, superflexSpec)
	require.NoError(t, report.Err)
	assert.Equal(t, "exact_header", report.Location.Strategy)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, []string{FieldNameOriginal, FieldNormalizedName, "overall_rank", "tier"}, rel.Fields)

	first := rel.Records[0]
	assert.Equal(t, "Justin Herbert", first.Text(FieldNameOriginal))
	assert.Equal(t, "justin herbert", first.Text(FieldNormalizedName))
	assert.Equal(t, Number("5"), first.Value("overall_rank"))
	_, ok := first.Get("Notes")
	assert.False(t, ok, "unmapped columns are not carried")

	second := rel.Records[1]
	assert.Equal(t, "dandre swift", second.Text(FieldNormalizedName))
	assert.True(t, second.Value("tier").IsNull())
}

func TestAdapt_EmbeddedHeader(t *testing.T) {
	wb := &sheet.Workbook{Sheets: []sheet.Sheet{{
		Rows: [][]string{
			{"Dynasty Superflex Rankings"},
			{""},
			{""},
			{"Player", "Overall", "Tier"},
			{"Justin Herbert", "5", "1"},
		},
	}}}

	rel, report := Adapt(wb, superflexSpec)
	require.NoError(t, report.Err)
	assert.Equal(t, "embedded_header", report.Location.Strategy)
	require.Equal(t, 1, rel.Len())
	assert.Equal(t, "5", rel.Records[0].Text("overall_rank"))
}

func TestAdapt_DedupFirstWins(t *testing.T) {
	wb := &sheet.Workbook{Sheets: []sheet.Sheet{{
		Rows: [][]string{
			{"Player", "Overall", "Tier"},
			{"Patrick Mahomes II", "3", "1"},
			{"Patrick Mahomes", "9", "2"},
			{"  ", "10", "2"},
		},
	}}}

	rel, report := Adapt(wb, superflexSpec)
	require.Equal(t, 1, rel.Len())
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 1, report.Unnamed)
	assert.Equal(t, "3", rel.Records[0].Text("overall_rank"))
	assert.Equal(t, "Patrick Mahomes II", rel.Records[0].Text(FieldNameOriginal))
}

func TestAdapt_MissingColumn(t *testing.T) {
	wb := &sheet.Workbook{Sheets: []sheet.Sheet{{
		Rows: [][]string{{"Player", "Overall"}, {"Josh Allen", "1"}},
	}}}

	rel, report := Adapt(wb, superflexSpec)
	assert.Equal(t, []string{"Tier"}, report.MissingColumns)
	v, ok := rel.Records[0].Get("tier")
	assert.True(t, ok)
	assert.True(t, v.IsNull())
}

func TestAdapt_Degrades(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		rel, report := Adapt(nil, superflexSpec)
		assert.ErrorIs(t, report.Err, ErrSourceAbsent)
		assert.Equal(t, 0, rel.Len())
		assert.True(t, rel.HasField("overall_rank"))
	})

	t.Run("Schema Not Found", func(t *testing.T) {
		wb := &sheet.Workbook{Sheets: []sheet.Sheet{{Rows: [][]string{{"Rank", "Team"}}}}}
		rel, report := Adapt(wb, superflexSpec)
		assert.ErrorIs(t, report.Err, sheet.ErrSchemaNotFound)
		assert.Nil(t, report.Location)
		assert.Equal(t, 0, rel.Len())
		assert.True(t, rel.HasField("tier"))
	})
}

func TestAdapt_CustomLabel(t *testing.T) {
	spec := SourceSpec{Name: "custom", NameLabel: "Name", Columns: []ColumnMapping{{From: "Value", To: "custom_value"}}}
	wb := &sheet.Workbook{Sheets: []sheet.Sheet{{Rows: [][]string{{"Name", "Value"}, {"Josh Allen", "99"}}}}}

	rel, report := Adapt(wb, spec)
	require.NoError(t, report.Err)
	assert.Equal(t, "exact_header", report.Location.Strategy)
	assert.Equal(t, "99", rel.Records[0].Text("custom_value"))
}
