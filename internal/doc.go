// Package internal contains helpers that are intentionally private to goBearer:
// token identifier generation and conversion between instants and the 32-bit
// seconds field carried on the wire.
//
// # What this package must NOT do
//
//   - Export types that appear in the public goBearer API.
//   - Be imported by any package outside the goBearer module.
package internal
