package session

import (
	"context"
	"testing"
	"time"

	"pet-health/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	now := time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	tok, exp, err := m.Issue(auth.Claims{OpenID: "dev_abc"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims, err := m.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "dev_abc", claims.OpenID)
}

func TestVerify_Expired(t *testing.T) {
	m, err := NewManager("secret", time.Hour)
	require.NoError(t, err)

	now := time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	tok, _, err := m.Issue(auth.Claims{OpenID: "o-1"})
	require.NoError(t, err)

	m.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = m.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	a, err := NewManager("secret-a", time.Hour)
	require.NoError(t, err)
	b, err := NewManager("secret-b", time.Hour)
	require.NoError(t, err)

	tok, _, err := a.Issue(auth.Claims{OpenID: "o-1"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssue_EmptyOpenID(t *testing.T) {
	m, err := NewManager("", 0)
	require.NoError(t, err)

	_, _, err = m.Issue(auth.Claims{OpenID: " "})
	assert.Error(t, err)
}
