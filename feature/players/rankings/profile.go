package rankings

import (
	"fmt"
	"strings"

	"player-enricher/core/reconcile"
)

// Profile binds a ranking format to its upload prefix and column mapping.
type Profile struct {
	// Format is the name used in config, routes and reports.
	Format string `json:"format"`
	// Prefix is the bucket prefix uploads of this format land under.
	Prefix string `json:"prefix"`
	// Spec maps the sheet columns to namespaced fields.
	Spec reconcile.SourceSpec `json:"spec"`
}

// Profiles lists the known formats in merge order.
var Profiles = []Profile{
	{
		Format: "superflex",
		Prefix: "uploads/superflex/",
		Spec: reconcile.SourceSpec{
			Name: "superflex",
			Columns: []reconcile.ColumnMapping{
				{From: "Overall", To: "overall_rank"},
				{From: "Positional Rank", To: "positional_rank"},
				{From: "Tier", To: "tier"},
			},
		},
	},
	{
		Format: "one_qb_dynasty",
		Prefix: "uploads/1QB/dynasty/",
		Spec: reconcile.SourceSpec{
			Name: "one_qb_dynasty",
			Columns: []reconcile.ColumnMapping{
				{From: "Overall", To: "one_qb_rank"},
				{From: "Positional Rank", To: "one_qb_pos_rank"},
				{From: "Tier", To: "one_qb_tier"},
			},
		},
	},
	{
		Format: "redraft",
		Prefix: "uploads/1QB/redraft/",
		Spec: reconcile.SourceSpec{
			Name: "redraft",
			Columns: []reconcile.ColumnMapping{
				{From: "Redraft_Overall", To: "redraft_overall_rank"},
				{From: "Redraft_Pos_Rank", To: "redraft_pos_rank"},
				{From: "Redraft_Tier", To: "redraft_tier"},
				{From: "Auction (Out of $200)", To: "redraft_auction_value"},
			},
		},
	},
}

// ProfileByName finds a profile by format name, ignoring case.
func ProfileByName(name string) (Profile, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Profiles {
		if strings.EqualFold(p.Format, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// Enabled resolves format names to profiles, keeping merge order. An empty
// list enables every profile.
func Enabled(formats []string) ([]Profile, error) {
	if len(formats) == 0 {
		return Profiles, nil
	}

	want := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		p, ok := ProfileByName(f)
		if !ok {
			return nil, fmt.Errorf("unknown ranking format %q", f)
		}
		want[p.Format] = struct{}{}
	}

	out := make([]Profile, 0, len(want))
	for _, p := range Profiles {
		if _, ok := want[p.Format]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// Names returns the format names of every profile.
func Names() []string {
	out := make([]string, 0, len(Profiles))
	for _, p := range Profiles {
		out = append(out, p.Format)
	}
	return out
}
