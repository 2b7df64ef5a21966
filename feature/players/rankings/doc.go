// Package rankings knows the ranking upload formats: where each lives in the
// bucket, which columns it carries and how to load the latest upload.
package rankings
