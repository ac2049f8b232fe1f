package goBearer

import (
	"fmt"
	"sort"
	"time"
)

// Builder assembles a Codec. A Builder can be built once.
type Builder struct {
	config  Config
	formats []Format
	now     func() time.Time

	built bool
}

// New returns a Builder with DefaultConfig and the legacy format registered.
func New() *Builder {
	return &Builder{
		config:  defaultConfig(),
		formats: []Format{LegacyFormat()},
	}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithFormat registers an additional format version. Registering a version that is
// already present replaces it.
func (b *Builder) WithFormat(f Format) *Builder {
	for i := range b.formats {
		if b.formats[i].Version == f.Version {
			b.formats[i] = f
			return b
		}
	}
	b.formats = append(b.formats, f)
	return b
}

// WithIssueVersion selects the format version new tokens are sealed with.
func (b *Builder) WithIssueVersion(v uint8) *Builder {
	b.config.Format.IssueVersion = v
	return b
}

// WithClock sets the clock used for issue times and expiry checks.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// WithMetricsEnabled toggles codec counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the decode latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and returns the Codec.
func (b *Builder) Build() (*Codec, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// -------- FORMAT REGISTRY --------
	registry := make(map[uint8]Format, len(b.formats))
	tags := make(map[byte]uint8, len(b.formats))
	for _, f := range b.formats {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("format v%d: %w", f.Version, err)
		}
		if f.Tagged {
			if prev, ok := tags[f.tag()]; ok {
				return nil, fmt.Errorf("format v%d: tag %q already used by v%d", f.Version, f.tag(), prev)
			}
			tags[f.tag()] = f.Version
		}
		registry[f.Version] = f
	}

	issue, ok := registry[cfg.Format.IssueVersion]
	if !ok {
		return nil, fmt.Errorf("issue format v%d is not registered", cfg.Format.IssueVersion)
	}

	var accept []Format
	if len(cfg.Format.AcceptVersions) == 0 {
		for _, f := range registry {
			accept = append(accept, f)
		}
	} else {
		for _, v := range cfg.Format.AcceptVersions {
			f, ok := registry[uint8(v)]
			if !ok {
				return nil, fmt.Errorf("accepted format v%d is not registered", v)
			}
			accept = append(accept, f)
		}
	}
	// Newest first.
	sort.Slice(accept, func(i, j int) bool { return accept[i].Version > accept[j].Version })

	codec := &Codec{
		config:  cfg,
		issue:   issue,
		accept:  accept,
		policy:  NewExpirationPolicy(b.now),
		metrics: NewMetrics(cfg.Metrics),
	}

	b.built = true
	return codec, nil
}
