// Package middleware exposes HTTP guards that authenticate requests with bearer
// tokens decoded by a goBearer.Codec.
//
// # Guards
//
//   - [RequirePlayer], [RequireBrand], [RequireAdmin] accept one token kind.
//   - [RequireUser] accepts player or admin tokens.
//   - [WebSocketQuery] moves an access_token query parameter into the Authorization
//     header for paths where clients cannot set headers.
//
// Each guard reads the Authorization header, decodes the token, and stores the typed
// identity and the raw token in the request context. Rejections answer 401 with a
// JSON body {"code": ..., "message": ...}. Expired tokens also carry the
// X-Session-Expired: true header.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Codec calls. Every accept or reject
// decision comes from the Codec.
//
// # What this package must NOT do
//
//   - Decrypt or parse token bytes itself.
//   - Keep per-token state or caches.
//   - Make authorization decisions beyond kind and validity.
package middleware
