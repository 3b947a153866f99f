// Package auth verifies the identity tokens minted by the identity provider.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hako/branca"
	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrInvalidToken = errs.NewUnauthenticatedError("invalid token")
	ErrExpiredToken = errs.NewUnauthenticatedError("expired token")
	ErrInvalidKey   = errors.New("token key must be 32 bytes long")
)

// Codec encodes identities as branca tokens with a msgpack payload.
type Codec struct {
	key string
	ttl time.Duration
}

func NewCodec(key string, ttl time.Duration) (*Codec, error) {
	if len(key) != 32 {
		return nil, ErrInvalidKey
	}

	return &Codec{key: key, ttl: ttl}, nil
}

func (c *Codec) branca() *branca.Branca {
	b := branca.NewBranca(c.key)
	b.SetTTL(uint32(c.ttl.Seconds()))
	return b
}

// Issue a token for the user.
func (c *Codec) Issue(user types.User) (string, error) {
	payload, err := msgpack.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("msgpack marshal token payload: %w", err)
	}

	token, err := c.branca().EncodeToString(string(payload))
	if err != nil {
		return "", fmt.Errorf("branca encode token: %w", err)
	}

	return token, nil
}

// Verify decodes the token back into the user it was issued for.
func (c *Codec) Verify(token string) (types.User, error) {
	var user types.User

	payload, err := c.branca().DecodeToString(token)
	if err != nil {
		if errors.Is(err, branca.ErrInvalidToken) || errors.Is(err, branca.ErrInvalidTokenVersion) {
			return user, ErrInvalidToken
		}

		if _, ok := err.(*branca.ErrExpiredToken); ok {
			return user, ErrExpiredToken
		}

		// check branca unexported/internal chacha20poly1305 error for invalid key.
		if strings.HasSuffix(err.Error(), "authentication failed") {
			return user, ErrInvalidToken
		}

		return user, fmt.Errorf("branca decode token: %w", err)
	}

	if err := msgpack.Unmarshal([]byte(payload), &user); err != nil {
		return user, ErrInvalidToken
	}

	if !user.Valid() {
		return user, ErrInvalidToken
	}

	return user, nil
}

// TokenFromHeader extracts the token of a bearer authorization header.
func TokenFromHeader(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
