// Package registry loads the canonical player registry, the document every
// master record is keyed against.
//
// The registry can live in the bucket, behind a URL or on disk. Whatever the
// origin, Decode yields one relation with player_id, full_name, position,
// team, age and normalized_name. Entries without an id are dropped.
package registry
