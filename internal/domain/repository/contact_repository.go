package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
)

type ContactMessageRepository interface {
	GetAll(ctx context.Context) ([]model.ContactMessage, error)
	GetByID(ctx context.Context, id int) (*model.ContactMessage, error)
	Create(ctx context.Context, insert model.InsertContactMessage) (*model.ContactMessage, error)
	// MarkAsRead flips isRead to true. There is no way back to unread.
	MarkAsRead(ctx context.Context, id int) (*model.ContactMessage, error)
	Delete(ctx context.Context, id int) error
}

type pgContactMessageRepository struct {
	db  *sql.DB
	ids *idSequence
}

func NewPgContactMessageRepository(db *sql.DB, ids *idSequence) ContactMessageRepository {
	return &pgContactMessageRepository{db: db, ids: ids}
}

const contactColumns = `id, name, email, subject, message, is_read, created_at`

func scanContactMessage(row interface{ Scan(...any) error }) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{}
	err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.IsRead, &msg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return msg, nil
}

func (r *pgContactMessageRepository) GetAll(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contact_messages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgContactMessageRepository.GetAll: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("pgContactMessageRepository.GetAll: %w", err)
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

func (r *pgContactMessageRepository) GetByID(ctx context.Context, id int) (*model.ContactMessage, error) {
	msg, err := scanContactMessage(r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgContactMessageRepository.GetByID: %w", err)
	}
	return msg, nil
}

func (r *pgContactMessageRepository) Create(ctx context.Context, insert model.InsertContactMessage) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:                   r.ids.Next(),
		InsertContactMessage: insert,
		IsRead:               false,
		CreatedAt:            time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contact_messages (`+contactColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message, msg.IsRead, msg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("pgContactMessageRepository.Create: %w", err)
	}
	return msg, nil
}

func (r *pgContactMessageRepository) MarkAsRead(ctx context.Context, id int) (*model.ContactMessage, error) {
	msg, err := scanContactMessage(r.db.QueryRowContext(ctx,
		`UPDATE contact_messages SET is_read = TRUE WHERE id = $1 RETURNING `+contactColumns, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgContactMessageRepository.MarkAsRead: %w", err)
	}
	return msg, nil
}

func (r *pgContactMessageRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("pgContactMessageRepository.Delete: %w", err)
	}
	return nil
}
