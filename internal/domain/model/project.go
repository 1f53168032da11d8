package model

import (
	"time"

	"devfolio/internal/common"
)

// InsertProject is the client-supplied portion of a Project. Project embeds
// it so the read shape can never drift from the write shape.
type InsertProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	LiveURL     *string  `json:"liveUrl"`
	GithubURL   *string  `json:"githubUrl"`
	Category    string   `json:"category"`
	TechStack   []string `json:"techStack"`
	Featured    bool     `json:"featured"`
}

type Project struct {
	ID int `json:"id"`
	InsertProject
	CreatedAt time.Time `json:"createdAt"`
}

func (p *InsertProject) Validate() error {
	ve := common.NewValidationError()
	if p.Title == "" {
		ve.Missing("title")
	}
	if p.Description == "" {
		ve.Missing("description")
	}
	if p.Thumbnail == "" {
		ve.Missing("thumbnail")
	}
	if p.Category == "" {
		ve.Missing("category")
	}
	if p.TechStack == nil {
		ve.Missing("techStack")
	}
	return ve.OrNil()
}
