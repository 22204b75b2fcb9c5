// Package prometheus provides Prometheus collectors for adminauth metrics.
//
// [NewPrometheusExporter] accepts an [adminauth.Engine] and exposes an [http.Handler]
// that renders all engine counters and histograms in Prometheus text exposition format.
// Counter names are prefixed adminauth_*_total; the single histogram is
// adminauth_validate_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
