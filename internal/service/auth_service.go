package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-loyalty-admin/internal/model"
	"go-loyalty-admin/internal/repository"
	"go-loyalty-admin/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrSessionExpired     = errors.New("session expired")
)

type AuthService interface {
	Login(ctx context.Context, role model.Role, identifier, password string) (*LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Restore(ctx context.Context, sessionID string) (*model.Session, error)
}

type LoginResponse struct {
	Token   string        `json:"token"`
	Session model.Session `json:"session"`
}

type authService struct {
	accountRepo  repository.AccountRepository
	sessionStore repository.SessionStore
}

func NewAuthService(accountRepo repository.AccountRepository, sessionStore repository.SessionStore) AuthService {
	return &authService{
		accountRepo:  accountRepo,
		sessionStore: sessionStore,
	}
}

// Login verifies credentials against the account directory, then persists
// one serialized session object and issues a token pointing at it. Field
// format checks happen in the handler before this is called.
func (s *authService) Login(ctx context.Context, role model.Role, identifier, password string) (*LoginResponse, error) {
	account, err := s.accountRepo.FindByLogin(role, identifier)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	if !account.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	session := model.Session{
		ID:        uuid.New().String(),
		Role:      account.Role,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		StoreName: account.StoreName,
		CreatedAt: time.Now(),
	}

	if err := s.sessionStore.Save(ctx, &session, jwt.TokenTTL); err != nil {
		return nil, errors.New("failed to persist session")
	}

	token, err := jwt.GenerateToken(session.ID, string(session.Role), session.Name, session.Email, session.StoreName)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{Token: token, Session: session}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessionStore.Delete(ctx, sessionID)
}

// Restore returns the full persisted profile, so a reload loses nothing.
func (s *authService) Restore(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, ErrSessionExpired
	}
	return session, nil
}
