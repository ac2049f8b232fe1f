package symmetric

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned for keys that are not 16, 24 or 32 bytes.
	ErrInvalidKey = errors.New("symmetric: invalid key size")
	// ErrDecrypt is returned when ciphertext is malformed, tampered with, or sealed under another key.
	ErrDecrypt = errors.New("symmetric: decryption failed")
)

const (
	legacyTokenKeyHex    = "EF083E6D901B4C72A1EC0DD3BD6DB271"
	legacySettingsKeyHex = "BD6DB271E2A1EC0DD3F083E6D901B4C7"
)

// Cipher seals and opens byte slices with AES-CBC and PKCS7 padding.
//
// A Cipher is immutable and safe for concurrent use.
type Cipher struct {
	block cipher.Block
	iv    [aes.BlockSize]byte
	name  string
}

// New returns a Cipher for key. The IV is the first block of the key.
func New(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKey, len(key))
	}

	owned := make([]byte, len(key))
	copy(owned, key)

	block, err := aes.NewCipher(owned)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	c := &Cipher{block: block, name: fmt.Sprintf("aes-%d-cbc", len(key)*8)}
	copy(c.iv[:], owned[:aes.BlockSize])
	return c, nil
}

// NewFromHex is New with a hexadecimal key.
func NewFromHex(keyHex string) (*Cipher, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return New(key)
}

// LegacyToken returns the cipher that seals issued bearer tokens.
func LegacyToken() *Cipher {
	return mustHex(legacyTokenKeyHex)
}

// LegacySettings returns the cipher used by deployment tooling for settings strings.
func LegacySettings() *Cipher {
	return mustHex(legacySettingsKeyHex)
}

func mustHex(keyHex string) *Cipher {
	c, err := NewFromHex(keyHex)
	if err != nil {
		panic(err)
	}
	return c
}

// Name describes the algorithm, e.g. "aes-128-cbc".
func (c *Cipher) Name() string {
	return c.name
}

// Encrypt pads plain with PKCS7 and encrypts it. The output length is a positive
// multiple of the block size.
func (c *Cipher) Encrypt(plain []byte) ([]byte, error) {
	if c == nil {
		return nil, ErrInvalidKey
	}
	padded := pad(plain)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv[:]).CryptBlocks(out, padded)
	return out, nil
}

// Decrypt reverses Encrypt. Any structural or padding failure returns ErrDecrypt.
func (c *Cipher) Decrypt(ct []byte) ([]byte, error) {
	if c == nil {
		return nil, ErrInvalidKey
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrDecrypt, len(ct))
	}
	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(c.block, c.iv[:]).CryptBlocks(out, ct)

	plain, ok := unpad(out)
	if !ok {
		return nil, fmt.Errorf("%w: bad padding", ErrDecrypt)
	}
	return plain, nil
}

func pad(plain []byte) []byte {
	n := aes.BlockSize - len(plain)%aes.BlockSize
	out := make([]byte, len(plain)+n)
	copy(out, plain)
	for i := len(plain); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func unpad(buf []byte) ([]byte, bool) {
	n := int(buf[len(buf)-1])
	if n == 0 || n > aes.BlockSize || n > len(buf) {
		return nil, false
	}
	want := make([]byte, n)
	for i := range want {
		want[i] = byte(n)
	}
	if subtle.ConstantTimeCompare(buf[len(buf)-n:], want) != 1 {
		return nil, false
	}
	return buf[:len(buf)-n], true
}
