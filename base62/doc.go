// Package base62 renders binary data as text over 62 alphanumeric symbols.
//
// Two incompatible encodings are provided; text produced by one cannot be decoded
// by the other.
//
//   - [BigInt] (variant A) treats the input as one big-endian integer and writes it
//     in base 62, most significant digit first. Leading zero bytes are carried as
//     leading zero-digit symbols.
//   - [BitPack] (variant B) reads the input six bits at a time. Groups whose top five
//     bits are all ones, or ones followed by a zero, are emitted as one of two reserved
//     symbols and consume only five bits, which keeps every symbol index below 62.
//
// Both encodings reject empty input and characters outside their alphabet.
//
// # What this package must NOT do
//
//   - Encrypt, pad, or frame data.
//   - Accept characters outside the configured alphabet.
package base62
