// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Observes request latency per chi route pattern.
//
// Provided helpers:
//   - GetClientIP: Resolves the originating client address behind proxies.
//   - Pprof: Serves the net/http/pprof endpoints under PprofPrefix.
package controller
