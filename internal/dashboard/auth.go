package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"karma-server/internal/apierrors"
)

const (
	tokenTTL    = 12 * time.Hour
	tokenIssuer = "karma-server"
	tokenScope  = "dashboard"
)

var (
	ErrInvalidAPIKey  = errors.New("invalid api key")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrAuthNotEnabled = errors.New("dashboard auth is not enabled")
)

// Authenticator exchanges the operator API key for short-lived JWTs and
// guards the dashboard routes with them.
type Authenticator struct {
	keyHash []byte
	secret  []byte
	now     func() time.Time
}

// NewAuthenticator returns an authenticator. An empty keyHash disables auth.
func NewAuthenticator(keyHash, secret string) *Authenticator {
	return &Authenticator{
		keyHash: []byte(keyHash),
		secret:  []byte(secret),
		now:     time.Now,
	}
}

func (a *Authenticator) Enabled() bool {
	return a != nil && len(a.keyHash) > 0
}

// IssueToken checks apiKey against the stored bcrypt hash and signs a token.
func (a *Authenticator) IssueToken(apiKey string) (string, time.Time, error) {
	if !a.Enabled() {
		return "", time.Time{}, ErrAuthNotEnabled
	}
	if err := bcrypt.CompareHashAndPassword(a.keyHash, []byte(apiKey)); err != nil {
		return "", time.Time{}, ErrInvalidAPIKey
	}

	now := a.now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   tokenScope,
		Audience:  jwt.ClaimStrings{tokenIssuer},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify validates a token issued by IssueToken.
func (a *Authenticator) Verify(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenIssuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}

// Middleware requires a valid token in the Authorization header or the
// token query parameter, which websocket clients use. Everything passes when
// auth is disabled.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}

		token := c.Query("token")
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
			return
		}

		if err := a.Verify(token); err != nil {
			msg := "Authorization token is invalid"
			if errors.Is(err, ErrExpiredToken) {
				msg = "Authorization token has expired"
			}
			apierrors.RespondWithError(c, apierrors.Unauthorized(msg))
			return
		}

		c.Next()
	}
}
