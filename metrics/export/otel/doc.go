// Package otel bridges codec metrics to an OpenTelemetry meter.
//
// [NewOTelExporter] registers one observable counter per codec counter and a set of
// cumulative bucket gauges for the decode latency histogram. Values are read from
// the codec snapshot on every collection.
//
// # What this package must NOT do
//
//   - Install a global MeterProvider.
//   - Mutate codec state.
package otel
