package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

func newAuthService() *AuthService {
	store := repository.NewMemoryStore()
	return NewAuthService(store.Users, store.Sessions, time.Hour)
}

func TestRegisterHashesPasswordAndOpensSession(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	user, token, err := auth.Register(ctx, RegisterRequest{
		Username: "jo", Password: "hunter22", Name: "Jo", Email: "jo@x.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != model.RoleUser {
		t.Errorf("self-registration must yield role %q, got %q", model.RoleUser, user.Role)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if token == "" {
		t.Fatal("register did not open a session")
	}

	resolved, err := auth.UserFromSession(ctx, token)
	if err != nil {
		t.Fatalf("resolving fresh session: %v", err)
	}
	if resolved.ID != user.ID {
		t.Errorf("session resolved to user %d, want %d", resolved.ID, user.ID)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	req := RegisterRequest{Username: "jo", Password: "hunter22", Name: "Jo", Email: "jo@x.com"}
	if _, _, err := auth.Register(ctx, req); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := auth.Register(ctx, req); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLoginVerifiesPassword(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	if _, _, err := auth.Register(ctx, RegisterRequest{
		Username: "jo", Password: "hunter22", Name: "Jo", Email: "jo@x.com",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := auth.Login(ctx, LoginRequest{Username: "jo", Password: "wrong"}); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	// Unknown usernames answer exactly like wrong passwords.
	if _, _, err := auth.Login(ctx, LoginRequest{Username: "nobody", Password: "hunter22"}); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("unknown user: expected ErrUnauthorized, got %v", err)
	}

	user, token, err := auth.Login(ctx, LoginRequest{Username: "jo", Password: "hunter22"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "jo" || token == "" {
		t.Fatalf("unexpected login result: user %q, token %q", user.Username, token)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	auth := newAuthService()

	_, token, err := auth.Register(ctx, RegisterRequest{
		Username: "jo", Password: "hunter22", Name: "Jo", Email: "jo@x.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := auth.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := auth.UserFromSession(ctx, token); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after logout, got %v", err)
	}
}

func TestUpdateRoleValidatesRole(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	users := NewUserService(store.Users)

	created, err := store.Users.Create(ctx, model.InsertUser{
		Username: "jo", Password: "hash", Name: "Jo", Email: "jo@x.com", Role: model.RoleUser,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := users.UpdateRole(ctx, created.ID, "owner"); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}

	promoted, err := users.UpdateRole(ctx, created.ID, model.RoleAdmin)
	if err != nil {
		t.Fatalf("updateRole: %v", err)
	}
	if promoted.Role != model.RoleAdmin {
		t.Errorf("role not updated, got %q", promoted.Role)
	}
}
