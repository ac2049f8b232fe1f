package internaldefs

import (
	goBearer "github.com/MrEthical07/goBearer"
)

// CounterDef names one codec counter for exporters.
type CounterDef struct {
	ID   goBearer.MetricID
	Name string
	Help string
}

// HistogramDef names one codec histogram for exporters.
type HistogramDef struct {
	ID   goBearer.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in MetricID order.
var CounterDefs = []CounterDef{
	{ID: goBearer.MetricEncodeSuccess, Name: "gobearer_encode_success_total", Help: "Tokens sealed."},
	{ID: goBearer.MetricEncodeFailure, Name: "gobearer_encode_failure_total", Help: "Encode calls rejected for bad input."},
	{ID: goBearer.MetricDecodeSuccess, Name: "gobearer_decode_success_total", Help: "Tokens that passed every decode check."},
	{ID: goBearer.MetricDecodeInvalid, Name: "gobearer_decode_invalid_total", Help: "Tokens rejected as invalid."},
	{ID: goBearer.MetricDecodeExpired, Name: "gobearer_decode_expired_total", Help: "Structurally valid tokens past their TTL."},
	{ID: goBearer.MetricDecodeKindMismatch, Name: "gobearer_decode_kind_mismatch_total", Help: "Tokens presented as the wrong kind."},
	{ID: goBearer.MetricDecodeEmptyIdentifier, Name: "gobearer_decode_empty_identifier_total", Help: "Tokens whose subject identifier is empty."},
	{ID: goBearer.MetricDecodeUntagged, Name: "gobearer_decode_untagged_total", Help: "Tokens opened through the untagged legacy format."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: goBearer.MetricDecodeLatency, Name: "gobearer_decode_latency_seconds", Help: "Decode latency histogram."},
}

// HistogramBounds are the bucket upper bounds in seconds, matching the codec's
// microsecond buckets.
var HistogramBounds = []string{
	"0.00001",
	"0.000025",
	"0.00005",
	"0.0001",
	"0.00025",
	"0.0005",
	"0.001",
	"+Inf",
}

// HistogramBoundSuffix names each bound for per-bucket instruments.
var HistogramBoundSuffix = []string{
	"10us",
	"25us",
	"50us",
	"100us",
	"250us",
	"500us",
	"1ms",
	"inf",
}

// NormalizeBuckets copies raw into a fixed-size array, zero-filling missing buckets.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets turns per-bucket counts into running totals.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
