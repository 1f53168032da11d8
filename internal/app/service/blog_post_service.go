package service

import (
	"context"

	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

type BlogPostService struct {
	posts repository.BlogPostRepository
}

func NewBlogPostService(posts repository.BlogPostRepository) *BlogPostService {
	return &BlogPostService{posts: posts}
}

func (s *BlogPostService) List(ctx context.Context) ([]model.BlogPost, error) {
	return s.posts.GetAll(ctx)
}

func (s *BlogPostService) Get(ctx context.Context, id int) (*model.BlogPost, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *BlogPostService) Create(ctx context.Context, insert model.InsertBlogPost) (*model.BlogPost, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.posts.Create(ctx, insert)
}

func (s *BlogPostService) Update(ctx context.Context, id int, insert model.InsertBlogPost) (*model.BlogPost, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.posts.Update(ctx, id, insert)
}

func (s *BlogPostService) Delete(ctx context.Context, id int) error {
	return s.posts.Delete(ctx, id)
}
