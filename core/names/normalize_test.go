package names_test

import (
	"testing"

	"player-enricher/core/names"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"Plain", "Justin Herbert", "justin herbert"},
		{"Apostrophe", "D'Andre Swift", "dandre swift"},
		{"Suffix II", "Patrick Mahomes II", "patrick mahomes"},
		{"Suffix Jr With Period", "Odell Beckham Jr.", "odell beckham"},
		{"Suffix After Comma", "Marvin Harrison, Jr.", "marvin harrison"},
		{"Suffix III", "Michael Pittman III", "michael pittman"},
		{"Suffix Upper Case", "Kenneth Walker III", "kenneth walker"},
		{"Initials", "A.J. Brown", "aj brown"},
		{"Dotted Suffix", "Calvin Ridley J.R.", "calvin ridley"},
		{"Suffix Inside Word Kept", "Ivory Victor", "ivory victor"},
		{"Hyphen Kept", "Amon-Ra St. Brown", "amon-ra st brown"},
		{"Whitespace", "  Ja'Marr   Chase\t", "jamarr chase"},
		{"Quotes", `"Hollywood" Brown`, "hollywood brown"},
		{"Unicode", "ÉMILE Smith", "émile smith"},
		{"Only Suffix", "Jr.", ""},
		{"Empty", "", ""},
		{"Nil", nil, ""},
		{"Int", 123, ""},
		{"Float", 1.5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names.Normalize(tt.input))
		})
	}
}

func TestNormalize_SuffixEquivalence(t *testing.T) {
	assert.Equal(t, names.Normalize("Patrick Mahomes"), names.Normalize("Patrick Mahomes II"))
	assert.Equal(t, names.Normalize("Travis Etienne"), names.Normalize("Travis Etienne Jr."))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Patrick Mahomes II",
		"D'Andre Swift",
		"J.R. Smith-Njigba",
		"iv.v ii-v x",
		"Jr . Sr",
		"  Amon-Ra   St. Brown  ",
		`a"jr"b`,
		"v.v.v",
		"Ñandú Íñigo",
		"",
	}

	for _, s := range inputs {
		once := names.NormalizeString(s)
		assert.Equal(t, once, names.NormalizeString(once), "input %q", s)
	}
}
