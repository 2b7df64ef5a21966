// Package integrity provides health checks for everything a pipeline run
// depends on.
//
// # Checks Provided
//
//   - Structure: Checks that every ranking upload prefix and the registry folder exist in the bucket.
//   - Uploads: Reports the latest upload of each ranking format, or that none exists.
//   - Registry: Verifies the registry document exists and decodes.
//   - Sink: Validates that the player_values table matches the model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/uploads : Runs uploads check.
//   - GET /integrity/registry : Runs registry check.
//   - GET /integrity/sink : Runs sink schema check.
package integrity
