package wire

import "errors"

var (
	// ErrShortBuffer is returned when a read needs more bytes than remain.
	ErrShortBuffer = errors.New("wire: short buffer")
	// ErrTrailingBytes is returned by Reader.Done when unread bytes remain.
	ErrTrailingBytes = errors.New("wire: trailing bytes")
	// ErrStringTooLong is returned when a length-prefixed field exceeds 65535 bytes.
	ErrStringTooLong = errors.New("wire: field longer than 65535 bytes")
	// ErrInvalidHex is returned when a hex field is not valid hexadecimal.
	ErrInvalidHex = errors.New("wire: invalid hex string")
)
