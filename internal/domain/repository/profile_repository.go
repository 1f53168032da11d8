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

type ProfileRepository interface {
	// Get returns ErrNotFound while no profile has been created yet.
	Get(ctx context.Context) (*model.Profile, error)
	// Upsert creates the singleton on first call and replaces its fields
	// afterwards. Two profile rows can never exist.
	Upsert(ctx context.Context, insert model.InsertProfile) (*model.Profile, error)
}

type pgProfileRepository struct {
	db  *sql.DB
	ids *idSequence
}

func NewPgProfileRepository(db *sql.DB, ids *idSequence) ProfileRepository {
	return &pgProfileRepository{db: db, ids: ids}
}

const profileColumns = `id, name, title, bio, avatar, email, location, resume_url, social_links, skills`

func (r *pgProfileRepository) Get(ctx context.Context) (*model.Profile, error) {
	profile := &model.Profile{}
	var socialLinks, skills []byte
	err := r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profile LIMIT 1`).Scan(
		&profile.ID, &profile.Name, &profile.Title, &profile.Bio, &profile.Avatar,
		&profile.Email, &profile.Location, &profile.ResumeURL, &socialLinks, &skills,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProfileRepository.Get: %w", err)
	}
	if err := json.Unmarshal(socialLinks, &profile.SocialLinks); err != nil {
		return nil, fmt.Errorf("pgProfileRepository.Get: decoding social links: %w", err)
	}
	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return nil, fmt.Errorf("pgProfileRepository.Get: decoding skills: %w", err)
	}
	return profile, nil
}

func (r *pgProfileRepository) Upsert(ctx context.Context, insert model.InsertProfile) (*model.Profile, error) {
	socialLinks, err := json.Marshal(insert.SocialLinks)
	if err != nil {
		return nil, fmt.Errorf("pgProfileRepository.Upsert: %w", err)
	}
	skills, err := json.Marshal(insert.Skills)
	if err != nil {
		return nil, fmt.Errorf("pgProfileRepository.Upsert: %w", err)
	}

	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	profile := &model.Profile{InsertProfile: insert}
	if existing != nil {
		profile.ID = existing.ID
		_, err = r.db.ExecContext(ctx,
			`UPDATE profile
			 SET name = $1, title = $2, bio = $3, avatar = $4, email = $5,
			     location = $6, resume_url = $7, social_links = $8, skills = $9
			 WHERE id = $10`,
			insert.Name, insert.Title, insert.Bio, insert.Avatar, insert.Email,
			insert.Location, insert.ResumeURL, socialLinks, skills, profile.ID,
		)
	} else {
		profile.ID = r.ids.Next()
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO profile (`+profileColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			profile.ID, insert.Name, insert.Title, insert.Bio, insert.Avatar, insert.Email,
			insert.Location, insert.ResumeURL, socialLinks, skills,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("pgProfileRepository.Upsert: %w", err)
	}
	return profile, nil
}
