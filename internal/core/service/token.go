package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskflow/workspace-api/internal/core/domain"
)

// DefaultTokenTTL is the fixed validity window for issued tokens.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the signed token payload: the registered claims carry issuance
// and expiry, plus the identity the token proves.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// TokenService issues and verifies HS256-signed bearer tokens. Tokens are
// stateless: validity is fully determined by signature and expiry, never by a
// store lookup, and there is no revocation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService around a process-wide signing secret
// loaded once at startup. A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token binding userID and email, valid from now until
// now + ttl.
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
		Email:  email,
	})
	return token.SignedString(s.secret)
}

// Verify checks signature integrity and expiry and returns the embedded
// identity. Every failure mode (bad signature, wrong algorithm, malformed
// structure, expiry) collapses into domain.ErrInvalidToken so callers cannot
// tell them apart.
func (s *TokenService) Verify(tokenString string) (*domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
