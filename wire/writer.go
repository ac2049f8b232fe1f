package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// MaxFieldLength is the largest payload a length-prefixed field can carry.
const MaxFieldLength = math.MaxUint16

// Writer appends fields to an in-memory buffer.
//
// The first failing call is remembered and every later call becomes a no-op,
// so a sequence of writes can be checked once through Bytes.
type Writer struct {
	buf bytes.Buffer
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewWriterSize returns an empty Writer with capacity for n bytes.
func NewWriterSize(n int) *Writer {
	w := &Writer{}
	w.buf.Grow(n)
	return w
}

// Byte appends a single octet.
func (w *Writer) Byte(b byte) *Writer {
	if w.err != nil {
		return w
	}
	w.buf.WriteByte(b)
	return w
}

// Uint16 appends v as two big-endian octets. No current token layout uses it.
func (w *Writer) Uint16(v uint16) *Writer {
	return w.fixed(v)
}

// Uint32 appends v as four big-endian octets.
func (w *Writer) Uint32(v uint32) *Writer {
	return w.fixed(v)
}

// Uint64 appends v as eight big-endian octets. No current token layout uses it.
func (w *Writer) Uint64(v uint64) *Writer {
	return w.fixed(v)
}

// GUID appends id in the mixed-endian layout.
func (w *Writer) GUID(id uuid.UUID) *Writer {
	if w.err != nil {
		return w
	}
	var raw [GUIDSize]byte
	putGUID(raw[:], id)
	w.buf.Write(raw[:])
	return w
}

// UUID appends id in RFC 4122 byte order.
func (w *Writer) UUID(id uuid.UUID) *Writer {
	if w.err != nil {
		return w
	}
	w.buf.Write(id[:])
	return w
}

// String appends s as a length-prefixed UTF-8 field.
func (w *Writer) String(s string) *Writer {
	if w.err != nil {
		return w
	}
	if len(s) > MaxFieldLength {
		w.err = fmt.Errorf("%w: string of %d bytes", ErrStringTooLong, len(s))
		return w
	}
	w.prefix(len(s))
	w.buf.WriteString(s)
	return w
}

// Hex decodes s from hexadecimal and appends the raw bytes as a length-prefixed field.
func (w *Writer) Hex(s string) *Writer {
	if w.err != nil {
		return w
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		w.err = fmt.Errorf("%w: %v", ErrInvalidHex, err)
		return w
	}
	if len(raw) > MaxFieldLength {
		w.err = fmt.Errorf("%w: hex of %d bytes", ErrStringTooLong, len(raw))
		return w
	}
	w.prefix(len(raw))
	w.buf.Write(raw)
	return w
}

// Err reports the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns a copy of the encoded buffer or the first write error.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out, nil
}

func (w *Writer) prefix(n int) {
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(n))
	w.buf.Write(lenBuf[:])
}

func (w *Writer) fixed(v any) *Writer {
	if w.err != nil {
		return w
	}
	if err := binary.Write(&w.buf, binary.BigEndian, v); err != nil {
		w.err = err
	}
	return w
}
