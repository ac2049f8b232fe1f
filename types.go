package goBearer

import (
	"fmt"
	"time"

	"github.com/MrEthical07/goBearer/internal"
	"github.com/google/uuid"
)

// TokenKind is the one-byte discriminator at the start of every token payload.
type TokenKind uint8

const (
	// KindPlayer marks a player session token.
	KindPlayer TokenKind = 1
	// KindBrand marks a brand (operator) token.
	KindBrand TokenKind = 2
	// KindAdmin marks a back-office administrator token.
	KindAdmin TokenKind = 3
)

// String returns the lower-case kind name.
func (k TokenKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBrand:
		return "brand"
	case KindAdmin:
		return "admin"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is a known kind.
func (k TokenKind) Valid() bool {
	return k == KindPlayer || k == KindBrand || k == KindAdmin
}

// TokenData is implemented by every decoded token.
type TokenData interface {
	Kind() TokenKind
	ID() uuid.UUID
	IssuedAt() time.Time
	// Subject is the identifier that must be non-zero for the token to be valid.
	Subject() uuid.UUID
}

// UserTokenData is implemented by tokens that identify a person (player or admin).
type UserTokenData interface {
	TokenData
	UserID() uuid.UUID
	DisplayName() string
	External() string
}

// PlayerTokenData identifies a player session under a brand.
type PlayerTokenData struct {
	TokenID        uuid.UUID
	UserIdentifier uuid.UUID
	BrandID        uuid.UUID
	Name           string
	ExternalID     string
	CreatedOn      time.Time
}

func (p PlayerTokenData) Kind() TokenKind     { return KindPlayer }
func (p PlayerTokenData) ID() uuid.UUID       { return p.TokenID }
func (p PlayerTokenData) IssuedAt() time.Time { return p.CreatedOn }
func (p PlayerTokenData) Subject() uuid.UUID  { return p.UserIdentifier }
func (p PlayerTokenData) UserID() uuid.UUID   { return p.UserIdentifier }
func (p PlayerTokenData) DisplayName() string { return p.Name }
func (p PlayerTokenData) External() string    { return p.ExternalID }

// BrandTokenData identifies a brand integration.
type BrandTokenData struct {
	TokenID   uuid.UUID
	BrandID   uuid.UUID
	CreatedOn time.Time
}

func (b BrandTokenData) Kind() TokenKind     { return KindBrand }
func (b BrandTokenData) ID() uuid.UUID       { return b.TokenID }
func (b BrandTokenData) IssuedAt() time.Time { return b.CreatedOn }
func (b BrandTokenData) Subject() uuid.UUID  { return b.BrandID }

// AdminTokenData identifies a back-office user.
type AdminTokenData struct {
	TokenID        uuid.UUID
	UserIdentifier uuid.UUID
	Name           string
	ExternalID     string
	CreatedOn      time.Time
}

func (a AdminTokenData) Kind() TokenKind     { return KindAdmin }
func (a AdminTokenData) ID() uuid.UUID       { return a.TokenID }
func (a AdminTokenData) IssuedAt() time.Time { return a.CreatedOn }
func (a AdminTokenData) Subject() uuid.UUID  { return a.UserIdentifier }
func (a AdminTokenData) UserID() uuid.UUID   { return a.UserIdentifier }
func (a AdminTokenData) DisplayName() string { return a.Name }
func (a AdminTokenData) External() string    { return a.ExternalID }

// NewPlayerToken returns player data with a fresh token id, issued at now.
func NewPlayerToken(userID, brandID uuid.UUID, name, externalID string, now time.Time) (*PlayerTokenData, error) {
	tid, err := internal.NewTokenID()
	if err != nil {
		return nil, err
	}
	return &PlayerTokenData{
		TokenID:        tid,
		UserIdentifier: userID,
		BrandID:        brandID,
		Name:           name,
		ExternalID:     externalID,
		CreatedOn:      issueTime(now),
	}, nil
}

// NewBrandToken returns brand data with a fresh token id, issued at now.
func NewBrandToken(brandID uuid.UUID, now time.Time) (*BrandTokenData, error) {
	tid, err := internal.NewTokenID()
	if err != nil {
		return nil, err
	}
	return &BrandTokenData{
		TokenID:   tid,
		BrandID:   brandID,
		CreatedOn: issueTime(now),
	}, nil
}

// NewAdminToken returns admin data with a fresh token id, issued at now.
func NewAdminToken(userID uuid.UUID, name, externalID string, now time.Time) (*AdminTokenData, error) {
	tid, err := internal.NewTokenID()
	if err != nil {
		return nil, err
	}
	return &AdminTokenData{
		TokenID:        tid,
		UserIdentifier: userID,
		Name:           name,
		ExternalID:     externalID,
		CreatedOn:      issueTime(now),
	}, nil
}

func issueTime(now time.Time) time.Time {
	return now.UTC().Truncate(time.Second)
}

var (
	_ UserTokenData = PlayerTokenData{}
	_ UserTokenData = AdminTokenData{}
	_ TokenData     = BrandTokenData{}
)
