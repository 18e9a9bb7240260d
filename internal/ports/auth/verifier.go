package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens de sesión para un identificador externo.
type TokenIssuer interface {
	Issue(claims Claims) (token string, expiresAt time.Time, err error)
}

// IdentityExchanger canjea un código transitorio del cliente por el
// identificador externo estable (openId).
type IdentityExchanger interface {
	Exchange(ctx context.Context, code string) (openID string, err error)
}
