package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	now := time.Now()

	session, err := GenerateSessionToken("test-issuer", "guid-1", time.Hour, "secret-key", now)
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "guid-1", session.UserGUID)
	assert.WithinDuration(t, now.Add(time.Hour), session.ExpiresAt, time.Second)
	assert.Equal(t, session.Token, session.String())

	claims, err := ParseSessionToken(session.Token, "secret-key", "test-issuer")
	require.NoError(t, err)
	guid, err := claims.GetUserGUID()
	require.NoError(t, err)
	assert.Equal(t, "guid-1", guid)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateSessionToken_UniquePerCall(t *testing.T) {
	now := time.Now()
	a, err := GenerateSessionToken("iss", "guid", time.Hour, "key", now)
	require.NoError(t, err)
	b, err := GenerateSessionToken("iss", "guid", time.Hour, "key", now)
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		guid     string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "g", time.Hour, "key"},
		{"empty guid", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "g", 0, "key"},
		{"empty key", "iss", "g", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, tt.guid, tt.duration, tt.key, time.Now())
			assert.Error(t, err)
		})
	}
}

func TestParseSessionToken_Rejects(t *testing.T) {
	now := time.Now()
	valid, err := GenerateSessionToken("iss", "guid", time.Hour, "key", now)
	require.NoError(t, err)
	expired, err := GenerateSessionToken("iss", "guid", time.Minute, "key", now.Add(-time.Hour))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	noSubjectString, err := noSubject.SignedString([]byte("key"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "iss", Subject: "guid"})
	noExpiryString, err := noExpiry.SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"empty", "", "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
		{"wrong key", valid.Token, "other", "iss"},
		{"wrong issuer", valid.Token, "key", "other"},
		{"expired", expired.Token, "key", "iss"},
		{"tampered", valid.Token + "x", "key", "iss"},
		{"no subject", noSubjectString, "key", "iss"},
		{"no expiry", noExpiryString, "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
