package services

import "errors"

// Sentinel errors returned by the token codec and game service. Controllers
// map these onto HTTP statuses; anything else is treated as internal.
var (
	ErrMalformedToken    = errors.New("invalid token format")
	ErrBadSignature      = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenGameMismatch = errors.New("game/token mismatch")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameExpired       = errors.New("game expired")
	ErrInvalidPosition   = errors.New("invalid position")
)
