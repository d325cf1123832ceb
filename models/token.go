package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the opaque credential handed to a client after registration or
// login. The core never decides how it is transported (cookie or header).
type Session struct {
	// Token is the compact signed form of the session. It is written to the
	// transport by the caller and never serialized in response bodies.
	Token string `json:"-"`

	// UserGUID is the external identifier of the user the session is bound to.
	UserGUID string `json:"user_guid"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"expires_at"`
}

// String returns the compact signed token.
// It implements the [fmt.Stringer] interface.
func (s Session) String() string {
	return s.Token
}

// SessionClaims is the claim set carried by a session token. The subject
// ("sub") claim holds the user GUID; the internal numeric id is never placed
// in a token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// GetUserGUID returns the user GUID stored in the subject claim.
func (c *SessionClaims) GetUserGUID() (string, error) {
	guid, err := c.GetSubject()
	if err != nil {
		return "", err
	}
	if guid == "" {
		return "", errors.New("empty subject claim")
	}
	return guid, nil
}
