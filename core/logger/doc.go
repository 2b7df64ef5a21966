// Package logger builds the application's zap logger.
//
// Level selects the minimum level; "debug" switches to zap's development
// preset. Format selects json (default) or console encoding.
//
// WithRayID attaches the request's ray id (set by the rayid middleware) so
// every line logged while serving a request can be correlated:
//
//	log, _ := logger.New(&cfg.Log)
//	l := logger.WithRayID(log, c)
//	l.Error("Lookup failed", zap.Error(err))
package logger
