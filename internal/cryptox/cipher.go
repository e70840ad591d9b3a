// Package cryptox implements the field-level obfuscation used to protect
// personal data at rest: a deterministic keyed stream construction with an
// HMAC integrity tag, encoded as a printable token.
//
// The construction is intentionally weak: the "key stream" is the derived key
// repeated to the plaintext length, with no nonce. Identical plaintexts under
// the same key produce identical tokens, and the scheme is vulnerable to
// known-plaintext key recovery. It obfuscates stored rows against casual
// inspection only; it is not a substitute for real authenticated encryption.
package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"unicode/utf8"
)

// tagSize is the length of the truncated HMAC-SHA256 tag prepended to the
// obfuscated payload.
const tagSize = 8

// Sentinel values returned by Decrypt instead of an error. A field that
// cannot be recovered degrades to one of these strings so the rest of the
// row stays readable.
const (
	// SentinelInvalidKey marks a tag mismatch: the token was produced under
	// a different key (rotated secret) or the payload was tampered with.
	SentinelInvalidKey = "[invalid key]"

	// SentinelUnreadable marks a structurally corrupt token: bad base64,
	// truncated blob, or a payload that does not decode to valid text.
	SentinelUnreadable = "[unreadable]"
)

// DefaultSecret is the documented insecure fallback used when no encryption
// secret is configured. A deployment running on it forfeits confidentiality.
const DefaultSecret = "dev-only-change-me"

// DeriveKey maps a configured secret through SHA-256 to a 32-byte symmetric
// key. Deterministic, never fails; the same secret always yields the same key.
func DeriveKey(secret string) []byte {
	h := sha256.Sum256([]byte(secret))
	return h[:]
}

// FieldCipher encrypts and decrypts single text fields with an injected key.
// The key is immutable for the lifetime of the cipher, so a FieldCipher is
// safe for concurrent use.
type FieldCipher struct {
	key []byte
}

// NewFieldCipher returns a cipher bound to the given derived key.
func NewFieldCipher(key []byte) *FieldCipher {
	return &FieldCipher{key: key}
}

// xorWithKey combines data with the cipher key cycled to the data's length.
// Applying it twice restores the input.
func (c *FieldCipher) xorWithKey(data []byte) []byte {
	out := make([]byte, len(data))
	for i := range data {
		out[i] = data[i] ^ c.key[i%len(c.key)]
	}
	return out
}

func (c *FieldCipher) tag(data []byte) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(data)
	return mac.Sum(nil)[:tagSize]
}

// Encrypt turns plaintext into a printable token: tag(8) ‖ obfuscated bytes,
// URL-safe base64. The empty string maps to the empty token so absent
// optional fields stay visibly absent. Deterministic: no per-call randomness.
func (c *FieldCipher) Encrypt(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	obfuscated := c.xorWithKey([]byte(plaintext))
	blob := append(c.tag(obfuscated), obfuscated...)
	return base64.URLEncoding.EncodeToString(blob)
}

// Decrypt reverses Encrypt. It never returns an error: the result is the
// original plaintext, SentinelInvalidKey on a tag mismatch, or
// SentinelUnreadable on a malformed token. The tag comparison is
// constant-time.
func (c *FieldCipher) Decrypt(token string) string {
	if token == "" {
		return ""
	}

	blob, err := base64.URLEncoding.DecodeString(token)
	if err != nil || len(blob) < tagSize {
		return SentinelUnreadable
	}

	tag, obfuscated := blob[:tagSize], blob[tagSize:]
	if !hmac.Equal(tag, c.tag(obfuscated)) {
		return SentinelInvalidKey
	}

	raw := c.xorWithKey(obfuscated)
	if !utf8.Valid(raw) {
		return SentinelUnreadable
	}
	return string(raw)
}
