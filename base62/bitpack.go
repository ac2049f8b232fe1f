package base62

import (
	"fmt"
	"strings"
)

const (
	symbolLowFive  = 60 // top five bits 11110
	symbolHighFive = 61 // top five bits 11111
)

type bitPackEncoding struct {
	table table
}

func (e *bitPackEncoding) Alphabet() string { return e.table.alphabet }
func (e *bitPackEncoding) Variant() Variant { return VariantBitPack }

// Encode packs data six bits at a time, most significant bit first.
func (e *bitPackEncoding) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}

	total := len(data) * 8
	var b strings.Builder
	b.Grow(total/5 + 1)

	for pos := 0; pos < total; {
		left := total - pos
		if left < 6 {
			b.WriteByte(e.table.alphabet[readBits(data, pos, left)])
			break
		}

		v := readBits(data, pos, 6)
		switch v >> 1 {
		case 0x1f:
			b.WriteByte(e.table.alphabet[symbolHighFive])
			pos += 5
		case 0x1e:
			b.WriteByte(e.table.alphabet[symbolLowFive])
			pos += 5
		default:
			b.WriteByte(e.table.alphabet[v])
			pos += 6
		}
	}

	return b.String(), nil
}

// Decode reverses Encode. The final symbol must exactly fill the last byte.
func (e *bitPackEncoding) Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	w := bitWriter{out: make([]byte, 0, len(text)*6/8+1)}
	last := len(text) - 1

	for i := 0; i < last; i++ {
		v, err := e.table.lookup(text, i)
		if err != nil {
			return nil, err
		}
		switch v {
		case symbolHighFive:
			w.write(0x1f, 5)
		case symbolLowFive:
			w.write(0x1e, 5)
		default:
			w.write(uint32(v), 6)
		}
	}

	v, err := e.table.lookup(text, last)
	if err != nil {
		return nil, err
	}
	mod := w.bits % 8
	if mod == 0 {
		return nil, fmt.Errorf("%w at offset %d", ErrExtraCharacter, last)
	}
	width := 8 - mod
	if v>>width > 0 {
		return nil, fmt.Errorf("%w at offset %d", ErrInvalidEnding, last)
	}
	w.write(uint32(v), width)

	return w.out, nil
}

// readBits returns n bits of data starting at bit offset pos, most significant first.
func readBits(data []byte, pos, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		p := pos + i
		bit := (data[p/8] >> (7 - uint(p%8))) & 1
		v = v<<1 | int(bit)
	}
	return v
}

type bitWriter struct {
	out  []byte
	acc  uint32
	pend int
	bits int
}

func (w *bitWriter) write(v uint32, n int) {
	w.acc = w.acc<<uint(n) | v&(1<<uint(n)-1)
	w.pend += n
	w.bits += n
	for w.pend >= 8 {
		w.pend -= 8
		w.out = append(w.out, byte(w.acc>>uint(w.pend)))
	}
	w.acc &= 1<<uint(w.pend) - 1
}
