// Package tokenauth provides credential verification and a signed token
// lifecycle (bcrypt password hashing, HS256 JWT issuance and validation,
// Bun-backed credential storage).
//
// Signing keys:
//   - DeriveSigningKey turns a configured secret into HMAC key material. The
//     secret may be standard base64 (it is decoded first) or raw bytes, and
//     the resulting key must be at least MinSigningKeySize bytes so weak
//     secrets fail loudly at startup instead of signing forgeable tokens.
//
// Credential flow:
//   - UserProvider verifies an identifier and password against the Users
//     repository, Auther collapses every credential failure into
//     ErrInvalidCredentials so callers cannot distinguish an unknown account
//     from a wrong password, and TokenServiceImpl issues the session token
//     for the verified subject.
//
// Protected routes:
//   - The middleware/jwtware subpackage extracts a bearer token from the
//     request, validates it through TokenService, and stores the subject in
//     the router locals under the configured context key.
package tokenauth
