package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devfolio/internal/common"
	"devfolio/internal/common/security"
	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

// AuthService owns the session lifecycle: it is the only component that
// creates, resolves, or destroys session tokens.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	ttl      time.Duration
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, ttl time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, ttl: ttl}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

// Register creates the user and logs them straight in. Self-registration
// always yields the "user" role; only an existing admin can promote.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, string, error) {
	insert := model.InsertUser{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Role:     model.RoleUser,
	}
	if err := insert.Validate(); err != nil {
		return nil, "", err
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}
	insert.Password = hash

	user, err := s.users.Create(ctx, insert)
	if err != nil {
		return nil, "", err
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*model.User, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", common.ErrBadRequest
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same response as a wrong password; do not reveal which
			// usernames exist.
			return nil, "", common.ErrUnauthorized
		}
		return nil, "", err
	}

	if !security.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", common.ErrUnauthorized
	}

	token, err := s.createSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// UserFromSession resolves a session cookie token to the user it belongs
// to. ErrNotFound covers unknown, expired, and orphaned tokens alike.
func (s *AuthService) UserFromSession(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

func (s *AuthService) createSession(ctx context.Context, userID int) (string, error) {
	token := security.NewSessionToken()
	if err := s.sessions.Create(ctx, token, userID, s.ttl); err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}
	return token, nil
}
