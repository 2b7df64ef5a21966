// Package reconcile builds one master record per player out of sources
// that disagree on structure and share no common identifier.
//
// # Model
//
// A Relation is an ordered list of Records with a declared field set. Every
// record carries every declared field; a field with no data holds Null, and
// a field that was never declared is absent (Record.Get reports false).
// Values are typed as Null, String or Number, and numbers keep their exact
// decimal text.
//
// # Stages
//
//  1. Adapt: one workbook plus a SourceSpec becomes a name-keyed relation.
//     Header discovery (package sheet) finds the names, package names builds
//     the normalized_name key, recognized columns are renamed into namespaced
//     fields and duplicate keys keep their first row. Failure to find the
//     names yields an empty relation, never an error.
//
//  2. Enrich: the registry relation is left-joined with each adapted source
//     on normalized_name, in order. The row count never changes. Keys shared
//     by several registry rows are copied into each of them and counted as
//     collisions in the MatchStat of the source.
//
//  3. Reconcile: the enriched relation is joined with the valuation relation
//     on the exact player_id text, in JoinInner or JoinLeft mode.
//
// BuildPlan runs the three stages over a PlanInput and returns a Plan with
// the master relation and per-stage reports. It holds no state between
// calls; concurrent plans share nothing.
//
// # Usage Example
//
//	plan, err := reconcile.BuildPlan(reconcile.PlanInput{
//	    Registry:  registry,
//	    Sources:   []reconcile.SourceInput{{Spec: superflex, Workbook: wb}},
//	    Valuation: values,
//	    Mode:      reconcile.JoinInner,
//	})
package reconcile
