package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired is returned when a token's signature is valid but its
	// validity window has passed. Callers may react by starting a refresh
	// flow, which is why it is distinct from ErrTokenInvalid.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for tampered, malformed or wrongly signed tokens.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims represents JWT claims. The user id travels in the registered
// Subject field; refresh tokens additionally carry a JTI for server-side
// revocation.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenConfig carries the signing material and validity windows for the
// token service.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// JWTService issues and verifies access and refresh tokens. Access and
// refresh tokens are signed with distinct secrets.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService creates a new JWT service from the given configuration.
func NewJWTService(cfg TokenConfig) *JWTService {
	return &JWTService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// RefreshTTL returns the configured refresh token validity window.
func (s *JWTService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

// GenerateAccessToken generates a new access token for the user.
func (s *JWTService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.accessSecret)
}

// GenerateRefreshToken generates a new refresh token for the user. The token
// ID is returned separately for storage in Redis.
func (s *JWTService) GenerateRefreshToken(userID uuid.UUID) (tokenID string, token string, err error) {
	now := time.Now()
	tokenID = uuid.New().String()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.refreshSecret)
	return tokenID, token, err
}

// VerifyAccessToken validates an access token and returns the subject user id.
func (s *JWTService) VerifyAccessToken(tokenString string) (uuid.UUID, error) {
	claims, err := s.verify(tokenString, s.accessSecret)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return userID, nil
}

// VerifyRefreshToken validates a refresh token and returns the subject user
// id and the token ID used for server-side revocation lookups.
func (s *JWTService) VerifyRefreshToken(tokenString string) (userID uuid.UUID, tokenID string, err error) {
	claims, err := s.verify(tokenString, s.refreshSecret)
	if err != nil {
		return uuid.Nil, "", err
	}
	userID, parseErr := uuid.Parse(claims.Subject)
	if parseErr != nil || claims.ID == "" {
		return uuid.Nil, "", ErrTokenInvalid
	}
	return userID, claims.ID, nil
}

// verify checks the signature first, then expiry, then payload shape, so
// tampering is reported distinctly from expiry.
func (s *JWTService) verify(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
