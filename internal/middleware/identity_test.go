package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/platform/logger"
	"pet-health/internal/ports/auth"
)

type fakeResolver struct {
	known map[string]string // openId -> ownerId
	err   error
	calls int
}

func (f *fakeResolver) LookupPrincipal(_ context.Context, openID string) (auth.Principal, error) {
	f.calls++
	if f.err != nil {
		return auth.Principal{}, f.err
	}
	id, ok := f.known[openID]
	if !ok {
		return auth.Principal{}, apperr.Unauthenticated("user not found, please log in")
	}
	return auth.Principal{OwnerID: id, OpenID: openID}, nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad signature")
	}
	return auth.Claims{OpenID: "o-token"}, nil
}

type result struct {
	status  int
	success bool
	message string
	owner   string
	body    string
}

func run(t *testing.T, res *fakeResolver, req *http.Request) result {
	t.Helper()

	var got result
	h := Identity(fakeVerifier{}, res, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		require.True(t, ok)
		got.owner = p.OwnerID
		b, _ := io.ReadAll(r.Body)
		got.body = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	got.status = rec.Code

	if rec.Code != http.StatusNoContent {
		var env struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		got.success = env.Success
		got.message = env.Message
	}
	return got
}

func newResolver() *fakeResolver {
	return &fakeResolver{known: map[string]string{
		"o-query":  "owner-q",
		"o-header": "owner-h",
		"o-body":   "owner-b",
		"o-token":  "owner-t",
	}}
}

func TestIdentity_Sources(t *testing.T) {
	t.Run("bearer token wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pets?openId=o-query", nil)
		req.Header.Set("Authorization", "Bearer good")
		assert.Equal(t, "owner-t", run(t, newResolver(), req).owner)
	})

	t.Run("query before header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/pets/1?openId=o-query", nil)
		req.Header.Set(OpenIDHeader, "o-header")
		assert.Equal(t, "owner-q", run(t, newResolver(), req).owner)
	})

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pets", nil)
		req.Header.Set(OpenIDHeader, "o-header")
		assert.Equal(t, "owner-h", run(t, newResolver(), req).owner)
	})

	t.Run("json body is restored", func(t *testing.T) {
		payload := `{"openId":"o-body","name":"Mango"}`
		req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		got := run(t, newResolver(), req)
		assert.Equal(t, "owner-b", got.owner)
		assert.Equal(t, payload, got.body)
	})
}

func TestIdentity_Rejections(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		res := newResolver()
		got := run(t, res, httptest.NewRequest(http.MethodGet, "/pets", nil))
		assert.Equal(t, http.StatusOK, got.status)
		assert.False(t, got.success)
		assert.Equal(t, "missing user identifier", got.message)
		assert.Zero(t, res.calls, "no store access without identifier")
	})

	t.Run("unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pets?openId=ghost", nil)
		got := run(t, newResolver(), req)
		assert.Equal(t, http.StatusOK, got.status)
		assert.Equal(t, "user not found, please log in", got.message)
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pets", nil)
		req.Header.Set("Authorization", "Bearer forged")
		got := run(t, newResolver(), req)
		assert.False(t, got.success)
		assert.Equal(t, "invalid session token", got.message)
	})

	t.Run("non json body ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(`openId=o-body`))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		got := run(t, newResolver(), req)
		assert.Equal(t, "missing user identifier", got.message)
	})

	t.Run("storage fault", func(t *testing.T) {
		res := newResolver()
		res.err = errors.New("database is locked")
		req := httptest.NewRequest(http.MethodGet, "/pets?openId=o-query", nil)
		got := run(t, res, req)
		assert.Equal(t, http.StatusInternalServerError, got.status)
		assert.Equal(t, "internal server error", got.message)
	})
}

func TestIdentity_BodyOverLimit(t *testing.T) {
	payload := `{"openId":"o-body","note":"` + strings.Repeat("x", 256) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res := newResolver()
	h := BodyLimit(64)(Identity(fakeVerifier{}, res, logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"request body too large"}`, rec.Body.String())
	assert.Zero(t, res.calls)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc "))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken("abc"))
	assert.Empty(t, bearerToken(""))
}
