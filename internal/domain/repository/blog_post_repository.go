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

type BlogPostRepository interface {
	GetAll(ctx context.Context) ([]model.BlogPost, error)
	GetByID(ctx context.Context, id int) (*model.BlogPost, error)
	Create(ctx context.Context, insert model.InsertBlogPost) (*model.BlogPost, error)
	Update(ctx context.Context, id int, insert model.InsertBlogPost) (*model.BlogPost, error)
	Delete(ctx context.Context, id int) error
}

type pgBlogPostRepository struct {
	db  *sql.DB
	ids *idSequence
}

func NewPgBlogPostRepository(db *sql.DB, ids *idSequence) BlogPostRepository {
	return &pgBlogPostRepository{db: db, ids: ids}
}

const blogPostColumns = `id, title, slug, content, thumbnail, excerpt, category, published_at`

func scanBlogPost(row interface{ Scan(...any) error }) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Content,
		&post.Thumbnail, &post.Excerpt, &post.Category, &post.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (r *pgBlogPostRepository) GetAll(ctx context.Context) ([]model.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgBlogPostRepository.GetAll: %w", err)
	}
	defer rows.Close()

	posts := []model.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("pgBlogPostRepository.GetAll: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *pgBlogPostRepository) GetByID(ctx context.Context, id int) (*model.BlogPost, error) {
	post, err := scanBlogPost(r.db.QueryRowContext(ctx, `SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("pgBlogPostRepository.GetByID: %w", err)
	}
	return post, nil
}

func (r *pgBlogPostRepository) Create(ctx context.Context, insert model.InsertBlogPost) (*model.BlogPost, error) {
	post := &model.BlogPost{
		ID:             r.ids.Next(),
		InsertBlogPost: insert,
		Slug:           insert.DeriveSlug(),
		PublishedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (`+blogPostColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		post.ID, post.Title, post.Slug, post.Content, post.Thumbnail, post.Excerpt, post.Category, post.PublishedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("pgBlogPostRepository.Create: %w", err)
	}
	return post, nil
}

// Update replaces every mutable field; id and published_at stay untouched.
func (r *pgBlogPostRepository) Update(ctx context.Context, id int, insert model.InsertBlogPost) (*model.BlogPost, error) {
	post := &model.BlogPost{ID: id, InsertBlogPost: insert, Slug: insert.DeriveSlug()}
	err := r.db.QueryRowContext(ctx,
		`UPDATE blog_posts
		 SET title = $1, slug = $2, content = $3, thumbnail = $4, excerpt = $5, category = $6
		 WHERE id = $7
		 RETURNING published_at`,
		insert.Title, post.Slug, insert.Content, insert.Thumbnail, insert.Excerpt, insert.Category, id,
	).Scan(&post.PublishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgBlogPostRepository.Update: %w", err)
	}
	return post, nil
}

func (r *pgBlogPostRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("pgBlogPostRepository.Delete: %w", err)
	}
	return nil
}
