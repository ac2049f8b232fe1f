package goBearer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidArgument is returned when an issuer passes data that cannot be encoded.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidToken matches every decode failure except expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken matches a structurally valid token past its TTL.
	ErrExpiredToken = errors.New("token expired")
	// ErrKindMismatch is the cause when a token was issued for another kind.
	ErrKindMismatch = errors.New("token kind mismatch")
	// ErrEmptyIdentifier is the cause when the subject identifier is the zero GUID.
	ErrEmptyIdentifier = errors.New("token subject identifier is empty")
	// ErrMissingIssueTime is the cause when CreatedOn decodes to the epoch.
	ErrMissingIssueTime = errors.New("token issue time missing")
	// ErrUnknownKind is the cause when the discriminator is not a user kind.
	ErrUnknownKind = errors.New("unknown token kind")
	// ErrNoMatchingFormat is the cause when no accepted format could open the token.
	ErrNoMatchingFormat = errors.New("no accepted format matches token")
	// ErrBuilderUsed is returned by a second call to Builder.Build.
	ErrBuilderUsed = errors.New("builder already used")
)

// InvalidTokenError wraps the cause of a rejected token.
//
// errors.Is(err, ErrInvalidToken) holds for every InvalidTokenError, and the cause
// stays reachable through Unwrap.
type InvalidTokenError struct {
	Kind TokenKind
	Err  error
}

func (e *InvalidTokenError) Error() string {
	msg := "invalid token"
	if e.Kind.Valid() {
		msg = fmt.Sprintf("invalid %s token", e.Kind)
	}
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *InvalidTokenError) Unwrap() error {
	return e.Err
}

func (e *InvalidTokenError) Is(target error) bool {
	return target == ErrInvalidToken
}

// ExpiredTokenError reports a token whose TTL has elapsed.
type ExpiredTokenError struct {
	Kind      TokenKind
	IssuedAt  time.Time
	ExpiredAt time.Time
}

func (e *ExpiredTokenError) Error() string {
	return fmt.Sprintf("%s token expired at %s", e.Kind, e.ExpiredAt.Format(time.RFC3339))
}

func (e *ExpiredTokenError) Is(target error) bool {
	return target == ErrExpiredToken
}

func invalid(kind TokenKind, err error) error {
	return &InvalidTokenError{Kind: kind, Err: err}
}
