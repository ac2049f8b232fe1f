// Command bearer-loadtest measures encode and decode throughput of the codec under
// concurrent load.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goBearer "github.com/MrEthical07/goBearer"
	"github.com/google/uuid"
)

func main() {
	var (
		tokens      = flag.Int("tokens", 10000, "number of player tokens to seed")
		concurrency = flag.Int("concurrency", 64, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (encode + decode)")
		latency     = flag.Bool("latency", false, "enable codec latency histograms")
	)
	flag.Parse()

	if *tokens <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "tokens, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	codec, err := goBearer.New().
		WithMetricsEnabled(true).
		WithLatencyHistograms(*latency).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build codec: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeding %d tokens...\n", *tokens)
	startSeed := time.Now()
	seeded := make([]string, *tokens)
	players := make([]*goBearer.PlayerTokenData, *tokens)
	for i := range seeded {
		text, data, err := codec.IssuePlayer(uuid.New(), uuid.New(), fmt.Sprintf("player-%d", i), fmt.Sprintf("ext-%d", i))
		if err != nil {
			fmt.Fprintf(os.Stderr, "issue failed: %v\n", err)
			os.Exit(1)
		}
		seeded[i], players[i] = text, data
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	encodeStats := runPhase(*ops, *concurrency, 7919, func(r *rand.Rand) error {
		_, err := codec.EncodePlayer(players[r.Intn(len(players))])
		return err
	})
	decodeStats := runPhase(*ops, *concurrency, 6151, func(r *rand.Rand) error {
		_, err := codec.DecodePlayer(seeded[r.Intn(len(seeded))])
		return err
	})

	fmt.Println("---- results ----")
	printStats("encode", encodeStats)
	printStats("decode", decodeStats)

	snap := codec.MetricsSnapshot()
	fmt.Printf("counters: encode_success=%d decode_success=%d decode_invalid=%d decode_expired=%d\n",
		snap.Counters[goBearer.MetricEncodeSuccess],
		snap.Counters[goBearer.MetricDecodeSuccess],
		snap.Counters[goBearer.MetricDecodeInvalid],
		snap.Counters[goBearer.MetricDecodeExpired],
	)
	if h, ok := snap.Histograms[goBearer.MetricDecodeLatency]; ok {
		fmt.Printf("decode latency buckets (10us..1ms,+Inf): %v\n", h)
	}
}

// runPhase spreads ops calls of op across concurrency workers and records each
// call's latency.
func runPhase(ops, concurrency int, seedStride int64, op func(r *rand.Rand) error) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*seedStride))
			local := make([]time.Duration, 0, ops/concurrency+1)
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					break
				}
				t0 := time.Now()
				if err := op(r); err != nil {
					atomic.AddInt64(&failures, 1)
				}
				local = append(local, time.Since(t0))
			}
			mu.Lock()
			latencies = append(latencies, local...)
			mu.Unlock()
		}(w)
	}
	wg.Wait()
	return computeStats(time.Since(start), latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total, failures: failures}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	return samples[(len(samples)-1)*p/100]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
