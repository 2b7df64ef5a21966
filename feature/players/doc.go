// Package players implements the enrichment pipeline and its HTTP surface.
//
// A run fetches current valuations, loads the canonical registry, reads the
// latest upload of each ranking format from the bucket and hands all of it
// to reconcile.BuildPlan. The resulting master relation is upserted into the
// player_values table in chunks. Stored records are served back by id, by
// id list and page by page.
//
// Routes:
//
//	GET  /players?limit=&offset=
//	GET  /players/:id
//	POST /players/batch
//	POST /pipeline/run?mode=&dry_run=
//	POST /uploads/:format
package players
