package service

import (
	"context"

	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

type ProfileService struct {
	profile repository.ProfileRepository
}

func NewProfileService(profile repository.ProfileRepository) *ProfileService {
	return &ProfileService{profile: profile}
}

func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	return s.profile.Get(ctx)
}

func (s *ProfileService) Upsert(ctx context.Context, insert model.InsertProfile) (*model.Profile, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.profile.Upsert(ctx, insert)
}
