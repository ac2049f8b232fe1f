package internal

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// NewTokenID returns a random (version 4) token identifier.
func NewTokenID() (uuid.UUID, error) {
	id, err := uuid.NewRandomFromReader(rand.Reader)
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate token id: %w", err)
	}
	return id, nil
}
