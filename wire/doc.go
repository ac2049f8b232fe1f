// Package wire implements the order-based binary layout used inside bearer tokens.
//
// A [Writer] appends primitive fields to a flat buffer and a [Reader] consumes them
// back in the same order. There is no framing, no field tags and no version byte:
// the caller's field order is the format.
//
// Field encodings:
//
//   - Byte: one octet.
//   - Uint32: four octets, big-endian.
//   - GUID: sixteen octets in the mixed-endian platform layout (first three groups
//     little-endian, last eight octets unchanged).
//   - UUID: sixteen octets in RFC 4122 order, for formats that do not need the
//     platform layout.
//   - String: uint16 little-endian byte length followed by UTF-8 bytes.
//   - Hex: uint16 little-endian byte length followed by the raw decoded bytes.
//
// Uint16 and Uint64 (big-endian) are reserved for later layout versions; the
// player, brand and admin layouts do not use them.
//
// # What this package must NOT do
//
//   - Return zero values for truncated input; short reads are errors.
//   - Know about token kinds, encryption, or text encodings.
package wire
