package base62

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Encode or Decode is given no data.
	ErrEmptyInput = errors.New("base62: empty input")
	// ErrInvalidCharacter is returned for a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("base62: invalid character")
	// ErrExtraCharacter is returned when the final symbol starts on a byte boundary.
	ErrExtraCharacter = errors.New("base62: an extra character was found")
	// ErrInvalidEnding is returned when the final symbol carries bits past the last byte.
	ErrInvalidEnding = errors.New("base62: invalid ending character was found")
)

// Variant identifies one of the two text encodings.
type Variant uint8

const (
	// VariantBigInt is the big-integer base conversion (variant A).
	VariantBigInt Variant = 'A'
	// VariantBitPack is the 6-bit packing scheme (variant B).
	VariantBitPack Variant = 'B'
)

func (v Variant) String() string {
	switch v {
	case VariantBigInt:
		return "bigint"
	case VariantBitPack:
		return "bitpack"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

// Encoding converts between bytes and base-62 text.
//
// Implementations are immutable and safe for concurrent use.
type Encoding interface {
	Encode(data []byte) (string, error)
	Decode(text string) ([]byte, error)
	Alphabet() string
	Variant() Variant
}

const (
	// BigIntAlphabet is the symbol table of variant A; index 0 is the zero digit.
	BigIntAlphabet = "GjUKez74PgQLhO3iopxsk62HYSTWVanDCR9BEFZ1MJcby0muXAvlNdw5ftrIq8"
	// BitPackAlphabet is the symbol table of variant B.
	BitPackAlphabet = "AvlNdw5ftrIq8xsk62HYSTWVanDCR9BEFZGjUKez74PgQLhO3iop1MJcby0muX"
)

var (
	// BigInt is the shared variant A encoding.
	BigInt Encoding = &bigIntEncoding{table: newTable(BigIntAlphabet)}
	// BitPack is the shared variant B encoding.
	BitPack Encoding = &bitPackEncoding{table: newTable(BitPackAlphabet)}
)

// ByVariant returns the shared encoding for v.
func ByVariant(v Variant) (Encoding, error) {
	switch v {
	case VariantBigInt:
		return BigInt, nil
	case VariantBitPack:
		return BitPack, nil
	default:
		return nil, fmt.Errorf("base62: unknown %s", v)
	}
}

type table struct {
	alphabet string
	index    [256]int8
}

func newTable(alphabet string) table {
	if len(alphabet) != 62 {
		panic("base62: alphabet must have 62 symbols")
	}
	t := table{alphabet: alphabet}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		if t.index[alphabet[i]] != -1 {
			panic("base62: duplicate symbol in alphabet")
		}
		t.index[alphabet[i]] = int8(i)
	}
	return t
}

func (t *table) lookup(text string, i int) (int, error) {
	v := t.index[text[i]]
	if v < 0 {
		return 0, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, text[i], i)
	}
	return int(v), nil
}
