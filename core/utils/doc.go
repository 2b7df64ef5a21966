// Package utils holds small helpers shared across packages: JSON scalar to
// text conversion, query-string booleans and slice chunking for batched
// sink writes and lookups.
package utils
