// Package goBearer provides a credential codec that turns typed session identities
// (player, brand, admin) into opaque bearer strings and back.
//
// A token is built in four steps: the identity fields are written in a fixed order by
// package wire, sealed by package symmetric, rendered as base-62 text by package
// base62, and, for tagged formats, prefixed with a one-symbol format version. Decoding
// reverses the steps and then checks the kind discriminator, the subject identifier,
// and the expiry computed by [ExpirationPolicy].
//
// The [Codec] is immutable after [Builder.Build] and safe for concurrent use.
//
// # Architecture boundaries
//
// goBearer is the public surface. It exposes [Codec], [Builder], [Config], [Format],
// the token data types, and the error taxonomy. Byte layout, encryption, and text
// encoding live in sub-packages that know nothing about token kinds.
//
// # What this package must NOT do
//
//   - Perform I/O, log, or block.
//   - Expose cipher keys.
//   - Keep revocation lists or session state; a token is valid for its full TTL.
//   - Import middleware or exporter sub-packages (no import cycles).
package goBearer
