package model

import (
	"time"

	"devfolio/internal/common"
)

type InsertContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactMessage struct {
	ID int `json:"id"`
	InsertContactMessage
	IsRead    bool      `json:"isRead"` // transitions false -> true only
	CreatedAt time.Time `json:"createdAt"`
}

func (m *InsertContactMessage) Validate() error {
	ve := common.NewValidationError()
	if m.Name == "" {
		ve.Missing("name")
	}
	if m.Email == "" {
		ve.Missing("email")
	}
	if m.Subject == "" {
		ve.Missing("subject")
	}
	if m.Message == "" {
		ve.Missing("message")
	}
	return ve.OrNil()
}
