// Package session emite y verifica tokens de sesión (JWT HS256) que llevan el
// openId del dueño, para que el cliente no tenga que mandar el identificador crudo.
package session

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"pet-health/internal/ports/auth"
)

const issuer = "pet-health"

var ErrInvalidToken = errors.New("invalid session token")

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager con secret vacío genera uno aleatorio: los tokens no
// sobreviven un reinicio (aceptable en desarrollo).
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	key := []byte(strings.TrimSpace(secret))
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "generate session secret")
		}
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{secret: key, ttl: ttl, now: time.Now}, nil
}

func (m *Manager) Issue(claims auth.Claims) (string, time.Time, error) {
	openID := strings.TrimSpace(claims.OpenID)
	if openID == "" {
		return "", time.Time{}, errors.New("session: empty open id")
	}

	now := m.now()
	exp := now.Add(m.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   openID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign session token")
	}
	return signed, exp, nil
}

// Verify implementa auth.AuthVerifier.
func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &rc, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, errors.Wrap(ErrInvalidToken, err.Error())
	}

	openID := strings.TrimSpace(rc.Subject)
	if openID == "" {
		return auth.Claims{}, ErrInvalidToken
	}
	return auth.Claims{OpenID: openID}, nil
}
