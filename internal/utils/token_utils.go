package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/newskeeper/newskeeper_backend/internal/core/domain"
)

// TokenCodec signs and verifies self-contained session tokens. The session
// manager depends on this interface so the signing algorithm is swappable.
type TokenCodec interface {
	Sign(identity domain.SessionIdentity, ttl time.Duration) (string, time.Time, error)
	Verify(token string) (*domain.SessionIdentity, error)
}

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTCodec implements TokenCodec with HS256-signed JWTs.
type JWTCodec struct {
	secret []byte
	issuer string
}

func NewJWTCodec(secret, issuer string) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), issuer: issuer}
}

// Sign issues a token carrying the user id as subject plus the username claim.
func (c *JWTCodec) Sign(identity domain.SessionIdentity, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(ttl)
	claims := sessionClaims{
		Username: identity.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiry, nil
}

// Verify parses a token string, validating signature, expiry and issuer.
func (c *JWTCodec) Verify(tokenString string) (*domain.SessionIdentity, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithIssuer(c.issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &domain.SessionIdentity{UserID: claims.Subject, Username: claims.Username}, nil
}
