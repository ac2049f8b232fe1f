package base62

import (
	"math/big"
	"strings"
)

var bigBase = big.NewInt(62)

type bigIntEncoding struct {
	table table
}

func (e *bigIntEncoding) Alphabet() string { return e.table.alphabet }
func (e *bigIntEncoding) Variant() Variant { return VariantBigInt }

// Encode writes data as a base-62 number. Each leading zero byte becomes one zero digit.
func (e *bigIntEncoding) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyInput
	}

	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	n := new(big.Int).SetBytes(data[zeros:])
	rem := new(big.Int)

	// ln(256)/ln(62) < 1.35
	digits := make([]byte, 0, (len(data)-zeros)*135/100+1)
	for n.Sign() > 0 {
		n.QuoRem(n, bigBase, rem)
		digits = append(digits, e.table.alphabet[rem.Int64()])
	}

	var b strings.Builder
	b.Grow(zeros + len(digits))
	for i := 0; i < zeros; i++ {
		b.WriteByte(e.table.alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String(), nil
}

// Decode parses text as a base-62 number, restoring one zero byte per leading zero digit.
func (e *bigIntEncoding) Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	zero := e.table.alphabet[0]
	zeros := 0
	for zeros < len(text) && text[zeros] == zero {
		zeros++
	}

	n := new(big.Int)
	d := new(big.Int)
	for i := zeros; i < len(text); i++ {
		v, err := e.table.lookup(text, i)
		if err != nil {
			return nil, err
		}
		n.Mul(n, bigBase)
		n.Add(n, d.SetInt64(int64(v)))
	}

	body := n.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}
