package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/platform/logger"
	"pet-health/internal/platform/respond"
	"pet-health/internal/ports/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

const (
	OpenIDQueryParam = "openId"
	OpenIDHeader     = "X-Open-ID"
)

// PrincipalResolver resuelve un openId ya existente (no crea dueños).
type PrincipalResolver interface {
	LookupPrincipal(ctx context.Context, openID string) (auth.Principal, error)
}

// Identity es el gateway de identidad. Orden de fuentes del openId:
//  1. Authorization: Bearer <token de sesión> (si hay verifier)
//  2. ?openId= (el mini-programa lo manda en la URL: algunos DELETE no llevan body)
//  3. header X-Open-ID
//  4. campo "openId" de un body JSON (el body se restaura para el handler)
//
// Sin identificador o con uno desconocido se corta acá, antes de tocar el store.
func Identity(verifier auth.AuthVerifier, resolver PrincipalResolver, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			openID, err := extractOpenID(r, verifier)
			if respond.IsBodyTooLarge(err) {
				respond.Status(w, http.StatusRequestEntityTooLarge, respond.BodyTooLarge)
				return
			}
			if err != nil {
				respond.Fail(w, apperr.Message(err, "invalid session token"))
				return
			}
			if openID == "" {
				respond.Fail(w, "missing user identifier")
				return
			}

			p, err := resolver.LookupPrincipal(r.Context(), openID)
			if err != nil {
				respond.Error(w, log, err, "resolve identity")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey).(auth.Principal)
	if !ok || strings.TrimSpace(p.OwnerID) == "" {
		return auth.Principal{}, false
	}
	return p, true
}

// WithPrincipal adjunta p sin pasar por el gateway (tests de handlers).
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func extractOpenID(r *http.Request, verifier auth.AuthVerifier) (string, error) {
	if token := bearerToken(r.Header.Get("Authorization")); token != "" && verifier != nil {
		claims, err := verifier.Verify(r.Context(), token)
		if err != nil {
			return "", apperr.Unauthenticated("invalid session token")
		}
		return strings.TrimSpace(claims.OpenID), nil
	}

	if v := strings.TrimSpace(r.URL.Query().Get(OpenIDQueryParam)); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(r.Header.Get(OpenIDHeader)); v != "" {
		return v, nil
	}
	return openIDFromBody(r)
}

// openIDFromBody solo devuelve error si el body supera el límite de BodyLimit;
// un JSON inválido se deja para el handler.
func openIDFromBody(r *http.Request) (string, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}
	if !strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "json") {
		return "", nil
	}

	raw, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		if respond.IsBodyTooLarge(err) {
			return "", err
		}
		return "", nil
	}
	if len(raw) == 0 {
		return "", nil
	}

	var body struct {
		OpenID string `json:"openId"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", nil
	}
	return strings.TrimSpace(body.OpenID), nil
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
