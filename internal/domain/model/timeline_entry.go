package model

import "devfolio/internal/common"

// TimelineEntry is a career/education item on the about page. Entries are
// listed in ascending Order; ties keep insertion order.
type InsertTimelineEntry struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	DateRange   string   `json:"dateRange"` // free text, e.g. "2020 - 2022"
	Skills      []string `json:"skills"`
	Order       int      `json:"order"`
}

type TimelineEntry struct {
	ID int `json:"id"`
	InsertTimelineEntry
}

func (t *InsertTimelineEntry) Validate() error {
	ve := common.NewValidationError()
	if t.Title == "" {
		ve.Missing("title")
	}
	if t.Company == "" {
		ve.Missing("company")
	}
	if t.Description == "" {
		ve.Missing("description")
	}
	if t.DateRange == "" {
		ve.Missing("dateRange")
	}
	if t.Skills == nil {
		ve.Missing("skills")
	}
	return ve.OrNil()
}
