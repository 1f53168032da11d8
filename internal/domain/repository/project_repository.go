package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
)

type ProjectRepository interface {
	GetAll(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id int) (*model.Project, error)
	Create(ctx context.Context, insert model.InsertProject) (*model.Project, error)
	Update(ctx context.Context, id int, insert model.InsertProject) (*model.Project, error)
	Delete(ctx context.Context, id int) error
}

type pgProjectRepository struct {
	db  *sql.DB
	ids *idSequence
}

func NewPgProjectRepository(db *sql.DB, ids *idSequence) ProjectRepository {
	return &pgProjectRepository{db: db, ids: ids}
}

const projectColumns = `id, title, description, thumbnail, live_url, github_url, category, tech_stack, featured, created_at`

func scanProject(row interface{ Scan(...any) error }) (*model.Project, error) {
	project := &model.Project{}
	var liveURL, githubURL sql.NullString
	var techStack []byte
	err := row.Scan(
		&project.ID, &project.Title, &project.Description, &project.Thumbnail,
		&liveURL, &githubURL, &project.Category, &techStack, &project.Featured, &project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if liveURL.Valid {
		project.LiveURL = &liveURL.String
	}
	if githubURL.Valid {
		project.GithubURL = &githubURL.String
	}
	if err := json.Unmarshal(techStack, &project.TechStack); err != nil {
		return nil, fmt.Errorf("decoding tech stack: %w", err)
	}
	return project, nil
}

func (r *pgProjectRepository) GetAll(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgProjectRepository.GetAll: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("pgProjectRepository.GetAll: %w", err)
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *pgProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	project, err := scanProject(r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgProjectRepository.GetByID: %w", err)
	}
	return project, nil
}

func (r *pgProjectRepository) Create(ctx context.Context, insert model.InsertProject) (*model.Project, error) {
	project := &model.Project{
		ID:            r.ids.Next(),
		InsertProject: insert,
		CreatedAt:     time.Now().UTC(),
	}
	techStack, err := json.Marshal(project.TechStack)
	if err != nil {
		return nil, fmt.Errorf("pgProjectRepository.Create: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		project.ID, project.Title, project.Description, project.Thumbnail,
		project.LiveURL, project.GithubURL, project.Category, techStack, project.Featured, project.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("pgProjectRepository.Create: %w", err)
	}
	return project, nil
}

// Update replaces every mutable field; id and created_at stay untouched.
func (r *pgProjectRepository) Update(ctx context.Context, id int, insert model.InsertProject) (*model.Project, error) {
	techStack, err := json.Marshal(insert.TechStack)
	if err != nil {
		return nil, fmt.Errorf("pgProjectRepository.Update: %w", err)
	}
	project := &model.Project{ID: id, InsertProject: insert}
	err = r.db.QueryRowContext(ctx,
		`UPDATE projects
		 SET title = $1, description = $2, thumbnail = $3, live_url = $4, github_url = $5,
		     category = $6, tech_stack = $7, featured = $8
		 WHERE id = $9
		 RETURNING created_at`,
		insert.Title, insert.Description, insert.Thumbnail, insert.LiveURL, insert.GithubURL,
		insert.Category, techStack, insert.Featured, id,
	).Scan(&project.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgProjectRepository.Update: %w", err)
	}
	return project, nil
}

func (r *pgProjectRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("pgProjectRepository.Delete: %w", err)
	}
	return nil
}
