// Package hasher computes response digests used as entity tags.
package hasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// Hasher digests data with SHA-256, keyed with HMAC when a key is set.
type Hasher struct {
	key []byte
}

// New creates a Hasher. An empty key gives a plain SHA-256 digest.
func New(key string) *Hasher {
	return &Hasher{key: []byte(key)}
}

// Hash returns the hex digest of data.
func (h *Hasher) Hash(data []byte) string {
	var d hash.Hash
	if len(h.key) > 0 {
		d = hmac.New(sha256.New, h.key)
	} else {
		d = sha256.New()
	}
	d.Write(data)
	return hex.EncodeToString(d.Sum(nil))
}

// ETag returns a strong entity tag for data.
func (h *Hasher) ETag(data []byte) string {
	return `"` + h.Hash(data)[:32] + `"`
}
