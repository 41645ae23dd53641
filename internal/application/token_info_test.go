package application

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectTokenReadsClaimsWithoutVerifying(t *testing.T) {
	issued := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "42",
		"sub": "ana@lee.com",
		"iat": issued.Unix(),
		"exp": issued.Add(24 * time.Hour).Unix(),
	}).SignedString([]byte("unknown-to-the-client"))
	require.NoError(t, err)

	info, err := InspectToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "42", info.UserID)
	assert.Equal(t, "ana@lee.com", info.Subject)
	assert.True(t, info.IssuedAt.Equal(issued))
	assert.False(t, info.Expired(issued.Add(time.Hour)))
	assert.True(t, info.Expired(issued.Add(25*time.Hour)))
}

func TestInspectTokenRejectsOpaqueToken(t *testing.T) {
	_, err := InspectToken("h.p.s")
	require.Error(t, err)
}

func TestTokenInfoWithoutExpiryNeverExpires(t *testing.T) {
	assert.False(t, TokenInfo{}.Expired(time.Now()))
}
