package service

import (
	"context"

	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

type ProjectService struct {
	projects repository.ProjectRepository
}

func NewProjectService(projects repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.GetAll(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int) (*model.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, insert model.InsertProject) (*model.Project, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.projects.Create(ctx, insert)
}

func (s *ProjectService) Update(ctx context.Context, id int, insert model.InsertProject) (*model.Project, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.projects.Update(ctx, id, insert)
}

func (s *ProjectService) Delete(ctx context.Context, id int) error {
	return s.projects.Delete(ctx, id)
}
