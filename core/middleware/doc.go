// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key) protecting the lookup and
//     pipeline routes. Disabled when no key is configured.
//   - rayid: assigns every request a ray id, stores it in the context for
//     logger.WithRayID and echoes it in the X-Ray-ID response header.
//
// Register rayid first so every log line of a request carries its id.
package middleware
