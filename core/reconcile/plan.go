package reconcile

import (
	"fmt"

	"player-enricher/core/sheet"
)

// SourceInput pairs a ranking workbook with the mapping used to read it.
// A nil Workbook means the source was absent.
type SourceInput struct {
	Spec     SourceSpec
	Workbook *sheet.Workbook
}

// PlanInput holds every loaded input of one run. Nothing in it is shared
// with other runs.
type PlanInput struct {
	// Registry is the canonical relation; it must carry player_id and
	// normalized_name.
	Registry *Relation
	// Sources are merged in order.
	Sources []SourceInput
	// Valuation is keyed by player_id.
	Valuation *Relation
	// Mode selects the identifier join semantics.
	Mode JoinMode
	// Strategies overrides the header discovery chain.
	Strategies []sheet.Strategy
}

// Plan is the fully built master relation of a run together with what each
// stage reported. Building a plan writes nothing.
type Plan struct {
	Master   *Relation       `json:"-"`
	Sources  []AdaptReport   `json:"sources"`
	Matches  []MatchStat     `json:"matches"`
	Identity ReconcileReport `json:"identity"`
	Summary  PlanSummary     `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	// RegistryRows counts canonical players.
	RegistryRows int `json:"registry_rows"`
	// SkippedSources counts sources that were absent or had no schema.
	SkippedSources int `json:"skipped_sources"`
	// MasterRows counts records ready for the sink.
	MasterRows int `json:"master_rows"`
}

// BuildPlan adapts every source, enriches the registry with them and
// reconciles the result against the valuation relation.
func BuildPlan(in PlanInput) (*Plan, error) {
	plan := &Plan{Summary: PlanSummary{RegistryRows: in.Registry.Len()}}

	sources := make([]Source, 0, len(in.Sources))
	for _, si := range in.Sources {
		rel, report := Adapt(si.Workbook, si.Spec, in.Strategies...)
		if report.Err != nil {
			plan.Summary.SkippedSources++
		}
		plan.Sources = append(plan.Sources, report)
		sources = append(sources, Source{Name: si.Spec.Name, Relation: rel, Fields: si.Spec.Fields()})
	}

	enriched, matches, err := Enrich(in.Registry, sources)
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}
	plan.Matches = matches

	master, identity, err := Reconcile(enriched, in.Valuation, FieldPlayerID, in.Mode)
	if err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	plan.Master = master
	plan.Identity = identity
	plan.Summary.MasterRows = master.Len()

	return plan, nil
}
