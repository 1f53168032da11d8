package service

import (
	"context"

	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

type TimelineService struct {
	entries repository.TimelineEntryRepository
}

func NewTimelineService(entries repository.TimelineEntryRepository) *TimelineService {
	return &TimelineService{entries: entries}
}

// List returns entries sorted ascending by their order field.
func (s *TimelineService) List(ctx context.Context) ([]model.TimelineEntry, error) {
	return s.entries.GetAll(ctx)
}

func (s *TimelineService) Create(ctx context.Context, insert model.InsertTimelineEntry) (*model.TimelineEntry, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.entries.Create(ctx, insert)
}

func (s *TimelineService) Update(ctx context.Context, id int, insert model.InsertTimelineEntry) (*model.TimelineEntry, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.entries.Update(ctx, id, insert)
}

func (s *TimelineService) Delete(ctx context.Context, id int) error {
	return s.entries.Delete(ctx, id)
}
