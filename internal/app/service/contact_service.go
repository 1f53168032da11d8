package service

import (
	"context"

	"devfolio/internal/domain/model"
	"devfolio/internal/domain/repository"
)

type ContactService struct {
	messages repository.ContactMessageRepository
}

func NewContactService(messages repository.ContactMessageRepository) *ContactService {
	return &ContactService{messages: messages}
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.messages.GetAll(ctx)
}

// Submit is the one public write in the system: anyone can send a message
// through the contact form.
func (s *ContactService) Submit(ctx context.Context, insert model.InsertContactMessage) (*model.ContactMessage, error) {
	if err := insert.Validate(); err != nil {
		return nil, err
	}
	return s.messages.Create(ctx, insert)
}

func (s *ContactService) MarkAsRead(ctx context.Context, id int) (*model.ContactMessage, error) {
	return s.messages.MarkAsRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.messages.Delete(ctx, id)
}
