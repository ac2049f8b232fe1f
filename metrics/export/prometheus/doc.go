// Package prometheus renders codec metrics in Prometheus text exposition format.
//
// [NewPrometheusExporter] reads a [goBearer.Codec] and exposes an [http.Handler].
// Counter names are prefixed gobearer_*_total; the single histogram is
// gobearer_decode_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
//   - Mutate codec state.
package prometheus
