package symmetric

import (
	"errors"
	"fmt"
)

// ErrNilEncoding is returned when a TextCipher has no text encoding.
var ErrNilEncoding = errors.New("symmetric: nil text encoding")

// TextEncoding turns ciphertext into printable text and back.
type TextEncoding interface {
	Encode(data []byte) (string, error)
	Decode(text string) ([]byte, error)
}

// TextCipher pairs a Cipher with a text encoding to seal strings.
type TextCipher struct {
	cipher   *Cipher
	encoding TextEncoding
}

// NewTextCipher returns a TextCipher sealing with c and rendering with enc.
func NewTextCipher(c *Cipher, enc TextEncoding) (*TextCipher, error) {
	if c == nil {
		return nil, ErrInvalidKey
	}
	if enc == nil {
		return nil, ErrNilEncoding
	}
	return &TextCipher{cipher: c, encoding: enc}, nil
}

// EncryptString seals the UTF-8 bytes of plain and encodes the result as text.
func (t *TextCipher) EncryptString(plain string) (string, error) {
	ct, err := t.cipher.Encrypt([]byte(plain))
	if err != nil {
		return "", err
	}
	return t.encoding.Encode(ct)
}

// DecryptString reverses EncryptString.
func (t *TextCipher) DecryptString(text string) (string, error) {
	ct, err := t.encoding.Decode(text)
	if err != nil {
		return "", fmt.Errorf("symmetric: decode text: %w", err)
	}
	plain, err := t.cipher.Decrypt(ct)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
