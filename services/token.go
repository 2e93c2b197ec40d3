package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// DeckClaim is the data embedded in a deck token. Field order matters: the
// signed payload is the JSON encoding of this struct, and Sign and Verify
// must produce byte-identical payloads for the HMAC to round-trip, so the
// encoding is fixed as {"gid":...,"expires":...}.
type DeckClaim struct {
	Gid     string `json:"gid"`
	Expires int64  `json:"expires"` // epoch seconds
}

// TokenCodec signs and verifies deck tokens with a process-wide HMAC-SHA256
// secret captured at construction. Tokens are self-contained: verification
// needs no store lookup. The secret never appears in tokens or logs.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret []byte) *TokenCodec {
	return &TokenCodec{secret: secret}
}

// Sign returns "<lowercase-hex-hmac>.<json-payload>" for the given game id
// and expiry, with the expiry truncated to whole epoch seconds.
func (tc *TokenCodec) Sign(gameID string, expiresAt time.Time) string {
	payload, _ := json.Marshal(DeckClaim{Gid: gameID, Expires: expiresAt.Unix()})

	mac := hmac.New(sha256.New, tc.secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))

	return sig + "." + string(payload)
}

// Verify checks the signature before trusting any claim field, using a
// constant-time comparison, then rejects expired claims.
func (tc *TokenCodec) Verify(token string) (DeckClaim, error) {
	var claim DeckClaim

	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return claim, ErrMalformedToken
	}
	sig, payload := parts[0], parts[1]

	mac := hmac.New(sha256.New, tc.secret)
	mac.Write([]byte(payload))
	calc := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(calc)) {
		return claim, ErrBadSignature
	}

	if err := json.Unmarshal([]byte(payload), &claim); err != nil {
		return claim, ErrMalformedToken
	}
	if time.Now().Unix() > claim.Expires {
		return claim, ErrTokenExpired
	}
	return claim, nil
}
