// Package fairness implements the commit-reveal protocol that lets the user
// verify the computer's move was not changed after seeing theirs.
package fairness

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// KeySize is the length of the secret key in bytes.
const KeySize = 32

// Commitment binds one chosen move before it is revealed. The tag is safe to
// disclose immediately: without the key it says nothing about the move. Once
// the key is revealed the user can recompute HMAC(key, label) for every
// candidate label and confirm exactly one matches the tag.
type Commitment struct {
	key   []byte
	label string
	tag   string
}

// New draws a fresh key from crypto/rand and tags the chosen move's label
// with HMAC-SHA256. A failing entropy source is returned as an error; the
// game must not proceed with a predictable commitment.
func New(label string) (*Commitment, error) {
	key := make([]byte, KeySize)
	if _, err := crand.Read(key); err != nil {
		return nil, fmt.Errorf("read commitment key: %w", err)
	}

	return &Commitment{
		key:   key,
		label: label,
		tag:   computeTag(key, label),
	}, nil
}

// Tag returns the lowercase hex HMAC tag.
func (c *Commitment) Tag() string {
	return c.tag
}

// Reveal returns the secret key as lowercase hex. The round controller calls
// this only after the outcome has been reported.
func (c *Commitment) Reveal() string {
	return hex.EncodeToString(c.key)
}

// Verify recomputes the tag for the given key and label, the same check a
// user performs after the key is disclosed.
func Verify(keyHex, label, tag string) bool {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(computeTag(key, label)), []byte(tag))
}

func computeTag(key []byte, label string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(label))
	return hex.EncodeToString(mac.Sum(nil))
}
