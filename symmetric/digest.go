package symmetric

import (
	"crypto/md5"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
)

// MD5Hex returns the lower-case hexadecimal MD5 digest of the UTF-8 bytes of s.
//
// Kept for compatibility with partner signatures; not a password hash.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA512Base64 returns the standard base64 SHA-512 digest of the UTF-8 bytes of s.
func SHA512Base64(s string) string {
	sum := sha512.Sum512([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}
