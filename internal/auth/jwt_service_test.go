package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testTokenConfig())
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.VerifyAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testTokenConfig())
	userID := uuid.New()

	tokenID, token, err := svc.GenerateRefreshToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, token)

	gotUserID, gotTokenID, err := svc.VerifyRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, tokenID, gotTokenID)
}

func TestJWTService_ExpiredAccessToken(t *testing.T) {
	cfg := testTokenConfig()
	cfg.AccessTTL = -time.Minute
	svc := NewJWTService(cfg)

	token, err := svc.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_ExpiredRefreshToken(t *testing.T) {
	cfg := testTokenConfig()
	cfg.RefreshTTL = -time.Minute
	svc := NewJWTService(cfg)

	_, token, err := svc.GenerateRefreshToken(uuid.New())
	assert.NoError(t, err)

	_, _, err = svc.VerifyRefreshToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService(testTokenConfig())

	token, err := svc.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.VerifyAccessToken(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = svc.VerifyAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

// An access token must never pass refresh verification and vice versa: the
// two token kinds are signed with distinct secrets.
func TestJWTService_CrossKindRejected(t *testing.T) {
	svc := NewJWTService(testTokenConfig())
	userID := uuid.New()

	accessToken, err := svc.GenerateAccessToken(userID)
	assert.NoError(t, err)
	_, _, err = svc.VerifyRefreshToken(accessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, refreshToken, err := svc.GenerateRefreshToken(userID)
	assert.NoError(t, err)
	_, err = svc.VerifyAccessToken(refreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService(testTokenConfig())

	other := NewJWTService(TokenConfig{
		AccessSecret:  "different-secret",
		RefreshSecret: "other-different-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    time.Hour,
	})

	token, err := svc.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
