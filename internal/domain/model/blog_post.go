package model

import (
	"time"

	"devfolio/internal/common"

	"github.com/gosimple/slug"
)

type InsertBlogPost struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Thumbnail string `json:"thumbnail"`
	Excerpt   string `json:"excerpt"`
	Category  string `json:"category"`
}

type BlogPost struct {
	ID int `json:"id"`
	InsertBlogPost
	Slug        string    `json:"slug"` // server-assigned, derived from the title
	PublishedAt time.Time `json:"publishedAt"`
}

// DeriveSlug builds the URL slug for the post. Regenerated on every update
// so the slug follows title changes.
func (p *InsertBlogPost) DeriveSlug() string {
	return slug.Make(p.Title)
}

func (p *InsertBlogPost) Validate() error {
	ve := common.NewValidationError()
	if p.Title == "" {
		ve.Missing("title")
	}
	if p.Content == "" {
		ve.Missing("content")
	}
	if p.Thumbnail == "" {
		ve.Missing("thumbnail")
	}
	if p.Excerpt == "" {
		ve.Missing("excerpt")
	}
	if p.Category == "" {
		ve.Missing("category")
	}
	return ve.OrNil()
}
