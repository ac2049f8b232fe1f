package internal

import (
	"errors"
	"math"
	"time"
)

// ErrSecondsOutOfRange is returned for instants that do not fit in an unsigned 32-bit
// count of seconds since the Unix epoch.
var ErrSecondsOutOfRange = errors.New("instant outside uint32 seconds range")

// ToWireSeconds truncates t to whole seconds since the Unix epoch.
func ToWireSeconds(t time.Time) (uint32, error) {
	secs := t.Unix()
	if secs < 0 || secs > math.MaxUint32 {
		return 0, ErrSecondsOutOfRange
	}
	return uint32(secs), nil
}

// FromWireSeconds is the UTC instant for a wire seconds value.
func FromWireSeconds(secs uint32) time.Time {
	return time.Unix(int64(secs), 0).UTC()
}
