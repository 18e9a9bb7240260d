package owners

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-health/internal/platform/apperr"
	"pet-health/internal/ports/auth"
)

const maxNicknameLen = 64

type Service struct {
	repo      Repository
	exchanger auth.IdentityExchanger
	issuer    auth.TokenIssuer
	now       func() time.Time
}

func NewService(repo Repository, exchanger auth.IdentityExchanger, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:      repo,
		exchanger: exchanger,
		issuer:    issuer,
		now:       time.Now,
	}
}

// Resolve busca el Owner del openId y lo crea si es la primera vez.
// Dos primeras llamadas concurrentes pueden chocar en la UNIQUE(open_id):
// el perdedor vuelve a leer una vez antes de fallar.
func (s *Service) Resolve(ctx context.Context, openID string) (Owner, error) {
	openID = strings.TrimSpace(openID)
	if openID == "" {
		return Owner{}, apperr.Validation("open id is required")
	}

	o, err := s.repo.GetByOpenID(ctx, openID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return Owner{}, err
	}

	now := s.now()
	o = Owner{
		ID:        uuid.NewString(),
		OpenID:    openID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		existing, getErr := s.repo.GetByOpenID(ctx, openID)
		if getErr == nil {
			return existing, nil
		}
		return Owner{}, err
	}
	return o, nil
}

// Lookup solo lee; un openId desconocido es una falla de autenticación.
func (s *Service) Lookup(ctx context.Context, openID string) (Owner, error) {
	openID = strings.TrimSpace(openID)
	if openID == "" {
		return Owner{}, apperr.Unauthenticated("missing user identifier")
	}
	o, err := s.repo.GetByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Owner{}, apperr.Unauthenticated("user not found, please log in")
		}
		return Owner{}, err
	}
	return o, nil
}

// LookupPrincipal adapta Lookup al contrato del middleware de identidad.
func (s *Service) LookupPrincipal(ctx context.Context, openID string) (auth.Principal, error) {
	o, err := s.Lookup(ctx, openID)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Principal{OwnerID: o.ID, OpenID: o.OpenID, Nickname: o.Nickname}, nil
}

type LoginResult struct {
	Owner     Owner
	Token     string
	ExpiresAt time.Time
}

// Login canjea el código del cliente, resuelve (o crea) el Owner y emite token de sesión.
func (s *Service) Login(ctx context.Context, code string) (LoginResult, error) {
	if strings.TrimSpace(code) == "" {
		return LoginResult{}, apperr.Validation("code is required")
	}
	if s.exchanger == nil {
		return LoginResult{}, errors.New("owners: identity exchanger not configured")
	}

	openID, err := s.exchanger.Exchange(ctx, code)
	if err != nil {
		return LoginResult{}, err
	}

	o, err := s.Resolve(ctx, openID)
	if err != nil {
		return LoginResult{}, err
	}

	res := LoginResult{Owner: o}
	if s.issuer != nil {
		tok, exp, err := s.issuer.Issue(auth.Claims{OpenID: o.OpenID})
		if err != nil {
			return LoginResult{}, err
		}
		res.Token = tok
		res.ExpiresAt = exp
	}
	return res, nil
}

func (s *Service) UpdateProfile(ctx context.Context, ownerID, nickname string) (Owner, error) {
	nickname = strings.TrimSpace(nickname)
	if len([]rune(nickname)) > maxNicknameLen {
		return Owner{}, apperr.Validation("nickname is too long")
	}
	if err := s.repo.UpdateNickname(ctx, ownerID, nickname, s.now()); err != nil {
		return Owner{}, err
	}
	return s.repo.GetByID(ctx, ownerID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}
