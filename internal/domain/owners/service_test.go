package owners

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/ports/auth"
)

type fakeRepo struct {
	mu       sync.Mutex
	byOpenID map[string]Owner
	// failCreate simula el perdedor de la carrera por UNIQUE(open_id).
	failCreate bool
	creates    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byOpenID: map[string]Owner{}}
}

func (f *fakeRepo) Create(_ context.Context, o Owner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.failCreate {
		f.byOpenID[o.OpenID] = Owner{ID: "winner", OpenID: o.OpenID}
		return errors.New("UNIQUE constraint failed: owners.open_id")
	}
	f.byOpenID[o.OpenID] = o
	return nil
}

func (f *fakeRepo) GetByOpenID(_ context.Context, openID string) (Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byOpenID[openID]
	if !ok {
		return Owner{}, apperr.ErrNotFound
	}
	return o, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.byOpenID {
		if o.ID == id {
			return o, nil
		}
	}
	return Owner{}, apperr.ErrNotFound
}

func (f *fakeRepo) UpdateNickname(_ context.Context, id, nickname string, updatedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, o := range f.byOpenID {
		if o.ID == id {
			o.Nickname = nickname
			o.UpdatedAt = updatedAt
			f.byOpenID[k] = o
			return nil
		}
	}
	return apperr.ErrNotFound
}

type fakeExchanger struct{ err error }

func (f fakeExchanger) Exchange(_ context.Context, code string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "ox_" + code, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(c auth.Claims) (string, time.Time, error) {
	return "tok-" + c.OpenID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), nil
}

func TestResolve_IsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeExchanger{}, fakeIssuer{})
	ctx := context.Background()

	a, err := svc.Resolve(ctx, "open-1")
	require.NoError(t, err)
	b, err := svc.Resolve(ctx, " open-1 ")
	require.NoError(t, err)

	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestResolve_DuplicateInsertRereads(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreate = true
	svc := NewService(repo, fakeExchanger{}, nil)

	o, err := svc.Resolve(context.Background(), "open-1")
	require.NoError(t, err)
	assert.Equal(t, "winner", o.ID)
}

func TestResolve_EmptyIdentifier(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeExchanger{}, nil)
	_, err := svc.Resolve(context.Background(), "  ")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLookup(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeExchanger{}, nil)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.EqualError(t, err, "missing user identifier")

	_, err = svc.Lookup(ctx, "ghost")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
	assert.EqualError(t, err, "user not found, please log in")
	assert.Zero(t, repo.creates, "lookup must not create owners")

	created, err := svc.Resolve(ctx, "open-1")
	require.NoError(t, err)
	p, err := svc.LookupPrincipal(ctx, "open-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.OwnerID)
	assert.Equal(t, "open-1", p.OpenID)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeExchanger{}, fakeIssuer{})
	ctx := context.Background()

	res, err := svc.Login(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "ox_abc", res.Owner.OpenID)
	assert.Equal(t, "tok-ox_abc", res.Token)
	assert.False(t, res.ExpiresAt.IsZero())

	again, err := svc.Login(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, res.Owner.ID, again.Owner.ID)

	_, err = svc.Login(ctx, " ")
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLogin_ExchangeFailure(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeExchanger{err: apperr.Unauthenticated("wechat login failed: invalid code")}, fakeIssuer{})

	_, err := svc.Login(context.Background(), "bad")
	require.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeExchanger{}, nil)
	fixed := time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	o, err := svc.Resolve(ctx, "open-1")
	require.NoError(t, err)

	got, err := svc.UpdateProfile(ctx, o.ID, "  Ana  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nickname)
	assert.Equal(t, fixed, got.UpdatedAt)

	long := make([]rune, maxNicknameLen+1)
	for i := range long {
		long[i] = '猫'
	}
	_, err = svc.UpdateProfile(ctx, o.ID, string(long))
	require.ErrorIs(t, err, apperr.ErrValidation)
}
