package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind tags a token as usable for API access or for refreshing a session.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// AccessTokenCookie is the cookie holding the access token.
const AccessTokenCookie = "access_token"

// RefreshTokenCookie is the cookie holding the refresh token.
const RefreshTokenCookie = "refresh_token"

var (
	// ErrInvalidToken covers malformed, tampered, expired and wrong-kind tokens.
	// Callers get no finer-grained reason.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoToken is returned when a request carries no credential at all.
	ErrNoToken = errors.New("no token in request")
)

// Claims is the validated content of a token.
type Claims struct {
	Subject string    // user email the token represents
	Kind    TokenKind // access or refresh
}

// JWT issues and validates signed HS256 tokens.
type JWT struct {
	SecretKey  string
	AccessExp  time.Duration
	RefreshExp time.Duration
}

// New creates a new JWT instance with the given signing secret and TTLs.
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// ttl returns the configured lifetime for a token kind.
func (j *JWT) ttl(kind TokenKind) time.Duration {
	if kind == KindRefresh {
		return j.RefreshExp
	}
	return j.AccessExp
}

// Generate creates a signed token for the subject with the kind's configured TTL.
// Timestamps are UTC epoch seconds.
func (j *JWT) Generate(ctx context.Context, subject string, kind TokenKind) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"type": string(kind),
		"iat":  now.Unix(),
		"exp":  now.Add(j.ttl(kind)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// Validate verifies the signature and expiry of a token and returns its claims.
// Any structural, signature or expiry violation yields ErrInvalidToken.
func (j *JWT) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}
	kind, ok := claims["type"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &Claims{Subject: sub, Kind: TokenKind(kind)}, nil
}

// GetTokenFromRequest extracts a token string from the access_token cookie,
// falling back to the Authorization bearer header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrNoToken
	}

	return parts[1], nil
}
