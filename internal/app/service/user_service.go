package service

import (
	"context"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

// UserService backs the admin user-management screens.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) UpdateRole(ctx context.Context, id int, role string) (*model.User, error) {
	if role != model.RoleAdmin && role != model.RoleUser {
		ve := common.NewValidationError()
		ve.Add("role", "must be either \"admin\" or \"user\"")
		return nil, ve
	}
	return s.users.UpdateRole(ctx, id, role)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
