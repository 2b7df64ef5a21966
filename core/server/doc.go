// Package server holds the HTTP server configuration.
//
// The Config struct defines the listen port, the API key protecting the
// lookup and pipeline routes, and the request body limit that bounds
// spreadsheet uploads. The start command builds the Fiber app from it.
package server
