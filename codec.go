package goBearer

import (
	"errors"
	"fmt"
	"time"

	"github.com/MrEthical07/goBearer/internal"
	"github.com/MrEthical07/goBearer/wire"
	"github.com/google/uuid"
)

// Codec encodes and decodes bearer tokens.
//
// A Codec is built once through [Builder] and is safe for concurrent use.
type Codec struct {
	config  Config
	issue   Format
	accept  []Format
	policy  *ExpirationPolicy
	metrics *Metrics
}

// DecodeOption adjusts a single decode call.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	ignoreExpiry bool
}

// IgnoreExpiry skips the TTL check. Structural checks still apply.
func IgnoreExpiry() DecodeOption {
	return func(o *decodeOptions) {
		o.ignoreExpiry = true
	}
}

// payloadSizeHint covers a player token with short names.
const payloadSizeHint = 96

/*
====================================
ENCODE
====================================
*/

// EncodePlayer seals p with the issue format.
func (c *Codec) EncodePlayer(p *PlayerTokenData) (string, error) {
	if p == nil {
		return "", c.encodeFailed(fmt.Errorf("%w: nil player token", ErrInvalidArgument))
	}
	return c.encode(KindPlayer, p.CreatedOn, func(f Format, w *wire.Writer) {
		f.putID(w, p.TokenID)
		f.putID(w, p.UserIdentifier)
		f.putID(w, p.BrandID)
		w.String(p.Name).String(p.ExternalID)
	})
}

// EncodeBrand seals b with the issue format.
func (c *Codec) EncodeBrand(b *BrandTokenData) (string, error) {
	if b == nil {
		return "", c.encodeFailed(fmt.Errorf("%w: nil brand token", ErrInvalidArgument))
	}
	return c.encode(KindBrand, b.CreatedOn, func(f Format, w *wire.Writer) {
		f.putID(w, b.TokenID)
		f.putID(w, b.BrandID)
	})
}

// EncodeAdmin seals a with the issue format.
func (c *Codec) EncodeAdmin(a *AdminTokenData) (string, error) {
	if a == nil {
		return "", c.encodeFailed(fmt.Errorf("%w: nil admin token", ErrInvalidArgument))
	}
	return c.encode(KindAdmin, a.CreatedOn, func(f Format, w *wire.Writer) {
		f.putID(w, a.TokenID)
		f.putID(w, a.UserIdentifier)
		w.String(a.Name).String(a.ExternalID)
	})
}

// IssuePlayer builds player data issued now and encodes it.
func (c *Codec) IssuePlayer(userID, brandID uuid.UUID, name, externalID string) (string, *PlayerTokenData, error) {
	p, err := NewPlayerToken(userID, brandID, name, externalID, c.policy.Now())
	if err != nil {
		return "", nil, err
	}
	text, err := c.EncodePlayer(p)
	if err != nil {
		return "", nil, err
	}
	return text, p, nil
}

// IssueBrand builds brand data issued now and encodes it.
func (c *Codec) IssueBrand(brandID uuid.UUID) (string, *BrandTokenData, error) {
	b, err := NewBrandToken(brandID, c.policy.Now())
	if err != nil {
		return "", nil, err
	}
	text, err := c.EncodeBrand(b)
	if err != nil {
		return "", nil, err
	}
	return text, b, nil
}

// IssueAdmin builds admin data issued now and encodes it.
func (c *Codec) IssueAdmin(userID uuid.UUID, name, externalID string) (string, *AdminTokenData, error) {
	a, err := NewAdminToken(userID, name, externalID, c.policy.Now())
	if err != nil {
		return "", nil, err
	}
	text, err := c.EncodeAdmin(a)
	if err != nil {
		return "", nil, err
	}
	return text, a, nil
}

func (c *Codec) encode(kind TokenKind, createdOn time.Time, body func(Format, *wire.Writer)) (string, error) {
	secs, err := internal.ToWireSeconds(createdOn)
	if err != nil {
		return "", c.encodeFailed(fmt.Errorf("%w: CreatedOn %s: %v", ErrInvalidArgument, createdOn, err))
	}

	w := wire.NewWriterSize(payloadSizeHint)
	w.Byte(byte(kind))
	body(c.issue, w)
	w.Uint32(secs)

	payload, err := w.Bytes()
	if err != nil {
		return "", c.encodeFailed(fmt.Errorf("%w: %v", ErrInvalidArgument, err))
	}

	text, err := c.issue.seal(payload)
	if err != nil {
		return "", c.encodeFailed(err)
	}
	c.metrics.Inc(MetricEncodeSuccess)
	return text, nil
}

func (c *Codec) encodeFailed(err error) error {
	c.metrics.Inc(MetricEncodeFailure)
	return err
}

/*
====================================
DECODE
====================================
*/

// DecodePlayer opens text as a player token and validates it.
func (c *Codec) DecodePlayer(text string, opts ...DecodeOption) (*PlayerTokenData, error) {
	return decodeAs(c, KindPlayer, text, opts, readPlayer)
}

// DecodeBrand opens text as a brand token and validates it.
func (c *Codec) DecodeBrand(text string, opts ...DecodeOption) (*BrandTokenData, error) {
	return decodeAs(c, KindBrand, text, opts, readBrand)
}

// DecodeAdmin opens text as an admin token and validates it.
func (c *Codec) DecodeAdmin(text string, opts ...DecodeOption) (*AdminTokenData, error) {
	return decodeAs(c, KindAdmin, text, opts, readAdmin)
}

// DecodeUser opens a player or admin token, dispatching on the discriminator.
// Brand tokens and unknown kinds are rejected as invalid.
func (c *Codec) DecodeUser(text string, opts ...DecodeOption) (UserTokenData, error) {
	start := c.startTimer()
	defer c.stopTimer(start)

	var (
		out  UserTokenData
		kind TokenKind
	)
	err := c.open(text, func(f Format, r *wire.Reader) error {
		b, err := r.Byte()
		if err != nil {
			return err
		}
		kind = TokenKind(b)

		var v UserTokenData
		switch kind {
		case KindPlayer:
			v, err = readPlayer(f, r)
		case KindAdmin:
			v, err = readAdmin(f, r)
		case KindBrand:
			return fmt.Errorf("%w: want player or admin, got %s", ErrKindMismatch, kind)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
		}
		if err != nil {
			return err
		}
		if err := r.Done(); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, c.rejected(kind, err)
	}
	if err := c.validate(out, opts); err != nil {
		return nil, err
	}
	c.metrics.Inc(MetricDecodeSuccess)
	return out, nil
}

// Inspect reports the kind and format of a token without validating its fields.
func (c *Codec) Inspect(text string) (TokenKind, Format, error) {
	var (
		kind TokenKind
		used Format
	)
	err := c.open(text, func(f Format, r *wire.Reader) error {
		b, err := r.Byte()
		if err != nil {
			return err
		}
		if !TokenKind(b).Valid() {
			return fmt.Errorf("%w: %s", ErrUnknownKind, TokenKind(b))
		}
		kind, used = TokenKind(b), f
		return nil
	})
	if err != nil {
		return 0, Format{}, invalid(0, err)
	}
	return kind, used, nil
}

func decodeAs[T TokenData](c *Codec, kind TokenKind, text string, opts []DecodeOption, read func(Format, *wire.Reader) (T, error)) (T, error) {
	start := c.startTimer()
	defer c.stopTimer(start)

	var zero, out T
	err := c.open(text, func(f Format, r *wire.Reader) error {
		b, err := r.Byte()
		if err != nil {
			return err
		}
		if got := TokenKind(b); got != kind {
			return fmt.Errorf("%w: want %s, got %s", ErrKindMismatch, kind, got)
		}
		v, err := read(f, r)
		if err != nil {
			return err
		}
		if err := r.Done(); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return zero, c.rejected(kind, err)
	}
	if err := c.validate(out, opts); err != nil {
		return zero, err
	}
	c.metrics.Inc(MetricDecodeSuccess)
	return out, nil
}

// open tries each accepted format in turn. A failure after successful decryption
// is preferred over an earlier decryption failure when reporting.
func (c *Codec) open(text string, parse func(Format, *wire.Reader) error) error {
	if text == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidArgument)
	}

	var openErr, parseErr error
	for _, f := range candidates(c.accept, text) {
		payload, err := f.open(text)
		if err != nil {
			if openErr == nil {
				openErr = err
			}
			continue
		}
		if err := parse(f, wire.NewReader(payload)); err != nil {
			if parseErr == nil {
				parseErr = err
			}
			continue
		}
		if !f.Tagged {
			c.metrics.Inc(MetricDecodeUntagged)
		}
		return nil
	}

	switch {
	case parseErr != nil:
		return parseErr
	case openErr != nil:
		return openErr
	default:
		return ErrNoMatchingFormat
	}
}

func (c *Codec) validate(t TokenData, opts []DecodeOption) error {
	var o decodeOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	kind := t.Kind()
	if t.Subject() == uuid.Nil {
		c.metrics.Inc(MetricDecodeEmptyIdentifier)
		return c.rejected(kind, ErrEmptyIdentifier)
	}
	issued := t.IssuedAt()
	if issued.Unix() == 0 {
		return c.rejected(kind, ErrMissingIssueTime)
	}
	if !o.ignoreExpiry && c.policy.IsExpired(kind, issued) {
		c.metrics.Inc(MetricDecodeExpired)
		return &ExpiredTokenError{
			Kind:      kind,
			IssuedAt:  issued,
			ExpiredAt: c.policy.ExpiresAt(kind, issued),
		}
	}
	return nil
}

func (c *Codec) rejected(kind TokenKind, err error) error {
	if errors.Is(err, ErrKindMismatch) {
		c.metrics.Inc(MetricDecodeKindMismatch)
	}
	c.metrics.Inc(MetricDecodeInvalid)
	return invalid(kind, err)
}

func (c *Codec) startTimer() time.Time {
	if !c.metrics.LatencyEnabled() {
		return time.Time{}
	}
	return time.Now()
}

func (c *Codec) stopTimer(start time.Time) {
	if start.IsZero() {
		return
	}
	c.metrics.Observe(MetricDecodeLatency, time.Since(start))
}

/*
====================================
PAYLOAD LAYOUTS
====================================
*/

func readPlayer(f Format, r *wire.Reader) (*PlayerTokenData, error) {
	p := &PlayerTokenData{}
	var err error
	if p.TokenID, err = f.readID(r); err != nil {
		return nil, err
	}
	if p.UserIdentifier, err = f.readID(r); err != nil {
		return nil, err
	}
	if p.BrandID, err = f.readID(r); err != nil {
		return nil, err
	}
	if p.Name, err = r.String(); err != nil {
		return nil, err
	}
	if p.ExternalID, err = r.String(); err != nil {
		return nil, err
	}
	if p.CreatedOn, err = readCreatedOn(r); err != nil {
		return nil, err
	}
	return p, nil
}

func readBrand(f Format, r *wire.Reader) (*BrandTokenData, error) {
	b := &BrandTokenData{}
	var err error
	if b.TokenID, err = f.readID(r); err != nil {
		return nil, err
	}
	if b.BrandID, err = f.readID(r); err != nil {
		return nil, err
	}
	if b.CreatedOn, err = readCreatedOn(r); err != nil {
		return nil, err
	}
	return b, nil
}

func readAdmin(f Format, r *wire.Reader) (*AdminTokenData, error) {
	a := &AdminTokenData{}
	var err error
	if a.TokenID, err = f.readID(r); err != nil {
		return nil, err
	}
	if a.UserIdentifier, err = f.readID(r); err != nil {
		return nil, err
	}
	if a.Name, err = r.String(); err != nil {
		return nil, err
	}
	if a.ExternalID, err = r.String(); err != nil {
		return nil, err
	}
	if a.CreatedOn, err = readCreatedOn(r); err != nil {
		return nil, err
	}
	return a, nil
}

func readCreatedOn(r *wire.Reader) (time.Time, error) {
	secs, err := r.Uint32()
	if err != nil {
		return time.Time{}, err
	}
	return internal.FromWireSeconds(secs), nil
}

/*
====================================
ACCESSORS
====================================
*/

// IssueFormat returns the format new tokens are sealed with.
func (c *Codec) IssueFormat() Format {
	return c.issue
}

// AcceptedFormats returns the formats tried when opening a token.
func (c *Codec) AcceptedFormats() []Format {
	out := make([]Format, len(c.accept))
	copy(out, c.accept)
	return out
}

// Policy returns the expiration policy used by decode.
func (c *Codec) Policy() *ExpirationPolicy {
	return c.policy
}

// Config returns a copy of the configuration the codec was built with.
func (c *Codec) Config() Config {
	return cloneConfig(c.config)
}

// MetricsSnapshot returns a point-in-time copy of the codec counters.
func (c *Codec) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}
