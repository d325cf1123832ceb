package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Tristano1/friend-library-system/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user GUID
//   - ID        (jti): a random identifier, unique per token
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus duration
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateSessionToken(issuer, userGUID string, duration time.Duration, signKey string, now time.Time) (models.Session, error) {
	if issuer == "" || userGUID == "" || duration <= 0 || signKey == "" {
		return models.Session{}, errors.New("invalid params for generating session token")
	}

	expiresAt := now.Add(duration)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userGUID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Session{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Session{
		Token:     tokenString,
		UserGUID:  userGUID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ParseSessionToken validates tokenString and returns its claims.
//
// Validation includes:
//   - signature verification with signKey, HS256 only
//   - issuer (iss) claim check against issuer
//   - presence and validity of the expiration (exp) claim
//   - presence of the subject (sub) claim
func ParseSessionToken(tokenString, signKey, issuer string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, errors.New("empty session token")
	}

	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if _, err := claims.GetUserGUID(); err != nil {
		return nil, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
