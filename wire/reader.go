package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Reader consumes fields written by a Writer, in the same order.
type Reader struct {
	r *bytes.Reader
}

// NewReader returns a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{r: bytes.NewReader(data)}
}

// Byte reads a single octet.
func (r *Reader) Byte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, short(err, "byte")
	}
	return b, nil
}

// Uint16 reads two big-endian octets. No current token layout uses it.
func (r *Reader) Uint16() (uint16, error) {
	var v uint16
	if err := binary.Read(r.r, binary.BigEndian, &v); err != nil {
		return 0, short(err, "uint16")
	}
	return v, nil
}

// Uint32 reads four big-endian octets.
func (r *Reader) Uint32() (uint32, error) {
	var v uint32
	if err := binary.Read(r.r, binary.BigEndian, &v); err != nil {
		return 0, short(err, "uint32")
	}
	return v, nil
}

// Uint64 reads eight big-endian octets. No current token layout uses it.
func (r *Reader) Uint64() (uint64, error) {
	var v uint64
	if err := binary.Read(r.r, binary.BigEndian, &v); err != nil {
		return 0, short(err, "uint64")
	}
	return v, nil
}

// GUID reads sixteen octets in the mixed-endian layout.
func (r *Reader) GUID() (uuid.UUID, error) {
	var raw [GUIDSize]byte
	if _, err := io.ReadFull(r.r, raw[:]); err != nil {
		return uuid.Nil, short(err, "guid")
	}
	return parseGUID(raw[:]), nil
}

// UUID reads sixteen octets in RFC 4122 byte order.
func (r *Reader) UUID() (uuid.UUID, error) {
	var id uuid.UUID
	if _, err := io.ReadFull(r.r, id[:]); err != nil {
		return uuid.Nil, short(err, "uuid")
	}
	return id, nil
}

// String reads a length-prefixed UTF-8 field.
func (r *Reader) String() (string, error) {
	raw, err := r.field("string")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Hex reads a length-prefixed field and returns it as lower-case hexadecimal.
func (r *Reader) Hex() (string, error) {
	raw, err := r.field("hex")
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// Remaining reports the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.r.Len()
}

// Done returns ErrTrailingBytes if any input is left unread.
func (r *Reader) Done() error {
	if n := r.r.Len(); n > 0 {
		return fmt.Errorf("%w: %d unread", ErrTrailingBytes, n)
	}
	return nil
}

func (r *Reader) field(name string) ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(r.r, lenBuf[:]); err != nil {
		return nil, short(err, name+" length")
	}
	n := int(binary.LittleEndian.Uint16(lenBuf[:]))
	if n > r.r.Len() {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d left", ErrShortBuffer, name, n, r.r.Len())
	}
	raw := make([]byte, n)
	if _, err := io.ReadFull(r.r, raw); err != nil {
		return nil, short(err, name)
	}
	return raw, nil
}

func short(err error, field string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrShortBuffer, field)
	}
	return fmt.Errorf("wire: reading %s: %w", field, err)
}
