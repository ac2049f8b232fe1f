// Package symmetric implements the block cipher used to seal bearer payloads.
//
// [Cipher] is AES in CBC mode with PKCS7 padding where the initialization vector is
// the first sixteen bytes of the key. For the deployed 128-bit keys the IV equals the
// key. Identical plaintexts therefore produce identical ciphertexts; this is the
// deployed format and is kept for interoperability with issued tokens.
//
// Key material is copied at construction and never handed back to callers.
//
// # What this package must NOT do
//
//   - Expose key bytes through any exported field or method.
//   - Share cipher.BlockMode values between calls.
//   - Know about token layouts.
package symmetric
