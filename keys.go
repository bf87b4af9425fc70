package tokenauth

import (
	"encoding/base64"

	"github.com/goliatone/go-errors"
)

// MinSigningKeySize is the smallest key HMAC-SHA256 will accept, per
// RFC 7518 §3.2 (256 bits).
const MinSigningKeySize = 32

// SigningKey is the symmetric key material used to sign and verify tokens.
// It is derived once at startup and must never be persisted or logged.
type SigningKey []byte

// DeriveSigningKey turns a configured secret into key material. Operators
// may supply either a generated base64 key or a raw passphrase: we first try
// a strict base64 decode and fall back to the verbatim UTF-8 bytes when the
// secret is not valid base64. A key below MinSigningKeySize is rejected so a
// weak secret is a startup failure, never a silently accepted one.
func DeriveSigningKey(secret string) (SigningKey, error) {
	if secret == "" {
		return nil, ErrNoEmptyString
	}

	key := []byte(secret)
	if decoded, err := base64.StdEncoding.DecodeString(secret); err == nil {
		key = decoded
	}

	if len(key) < MinSigningKeySize {
		return nil, ErrWeakSigningKey.Clone().WithMetadata(map[string]any{
			"key_bytes": len(key),
			"min_bytes": MinSigningKeySize,
		})
	}

	return SigningKey(key), nil
}

// MustDeriveSigningKey is DeriveSigningKey for wiring code that treats a bad
// secret as fatal.
func MustDeriveSigningKey(secret string) SigningKey {
	key, err := DeriveSigningKey(secret)
	if err != nil {
		panic(errors.Wrap(err, errors.CategoryBadInput, "unusable signing secret"))
	}
	return key
}
