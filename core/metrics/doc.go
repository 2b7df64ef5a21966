// Package metrics exposes pipeline observability as Prometheus metrics.
//
// A Manager owns its registry, so two managers never collide and nothing is
// registered globally. Recorded values:
//
//   - runs and run duration per join mode and outcome
//   - master relation size per join mode
//   - per-source rows, matched players and name collisions
//   - skipped sources and sink chunk outcomes
//
// Handler serves the registry on a Fiber route:
//
//	m := metrics.NewManager()
//	app.Get("/metrics", m.Handler())
package metrics
