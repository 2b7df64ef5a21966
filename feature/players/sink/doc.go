// Package sink stores master records in the player_values table.
//
// Writes are chunked upserts keyed by sleeper_id. Each chunk commits on its
// own, so a failure part way through leaves earlier chunks in place and is
// reported through WriteReport rather than rolled back.
package sink
