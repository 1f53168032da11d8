package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
)

type TimelineEntryRepository interface {
	// GetAll returns entries in ascending order, ties broken by insertion order.
	GetAll(ctx context.Context) ([]model.TimelineEntry, error)
	GetByID(ctx context.Context, id int) (*model.TimelineEntry, error)
	Create(ctx context.Context, insert model.InsertTimelineEntry) (*model.TimelineEntry, error)
	Update(ctx context.Context, id int, insert model.InsertTimelineEntry) (*model.TimelineEntry, error)
	Delete(ctx context.Context, id int) error
}

type pgTimelineEntryRepository struct {
	db  *sql.DB
	ids *idSequence
}

func NewPgTimelineEntryRepository(db *sql.DB, ids *idSequence) TimelineEntryRepository {
	return &pgTimelineEntryRepository{db: db, ids: ids}
}

const timelineColumns = `id, title, company, description, date_range, skills, sort_order`

func scanTimelineEntry(row interface{ Scan(...any) error }) (*model.TimelineEntry, error) {
	entry := &model.TimelineEntry{}
	var skills []byte
	err := row.Scan(
		&entry.ID, &entry.Title, &entry.Company, &entry.Description,
		&entry.DateRange, &skills, &entry.Order,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(skills, &entry.Skills); err != nil {
		return nil, fmt.Errorf("decoding skills: %w", err)
	}
	return entry, nil
}

func (r *pgTimelineEntryRepository) GetAll(ctx context.Context) ([]model.TimelineEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+timelineColumns+` FROM timeline_entries ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("pgTimelineEntryRepository.GetAll: %w", err)
	}
	defer rows.Close()

	entries := []model.TimelineEntry{}
	for rows.Next() {
		entry, err := scanTimelineEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("pgTimelineEntryRepository.GetAll: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func (r *pgTimelineEntryRepository) GetByID(ctx context.Context, id int) (*model.TimelineEntry, error) {
	entry, err := scanTimelineEntry(r.db.QueryRowContext(ctx, `SELECT `+timelineColumns+` FROM timeline_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgTimelineEntryRepository.GetByID: %w", err)
	}
	return entry, nil
}

func (r *pgTimelineEntryRepository) Create(ctx context.Context, insert model.InsertTimelineEntry) (*model.TimelineEntry, error) {
	entry := &model.TimelineEntry{
		ID:                  r.ids.Next(),
		InsertTimelineEntry: insert,
	}
	skills, err := json.Marshal(entry.Skills)
	if err != nil {
		return nil, fmt.Errorf("pgTimelineEntryRepository.Create: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO timeline_entries (`+timelineColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.Title, entry.Company, entry.Description, entry.DateRange, skills, entry.Order,
	)
	if err != nil {
		return nil, fmt.Errorf("pgTimelineEntryRepository.Create: %w", err)
	}
	return entry, nil
}

func (r *pgTimelineEntryRepository) Update(ctx context.Context, id int, insert model.InsertTimelineEntry) (*model.TimelineEntry, error) {
	skills, err := json.Marshal(insert.Skills)
	if err != nil {
		return nil, fmt.Errorf("pgTimelineEntryRepository.Update: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE timeline_entries
		 SET title = $1, company = $2, description = $3, date_range = $4, skills = $5, sort_order = $6
		 WHERE id = $7`,
		insert.Title, insert.Company, insert.Description, insert.DateRange, skills, insert.Order, id,
	)
	if err != nil {
		return nil, fmt.Errorf("pgTimelineEntryRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("pgTimelineEntryRepository.Update: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrNotFound
	}
	return &model.TimelineEntry{ID: id, InsertTimelineEntry: insert}, nil
}

func (r *pgTimelineEntryRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM timeline_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("pgTimelineEntryRepository.Delete: %w", err)
	}
	return nil
}
