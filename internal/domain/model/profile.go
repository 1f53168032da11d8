package model

import "devfolio/internal/common"

// Profile is a singleton: at most one record exists system-wide. It is
// created on the first upsert and merged on every one after that.
type InsertProfile struct {
	Name        string            `json:"name"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	Avatar      string            `json:"avatar"`
	Email       string            `json:"email"`
	Location    string            `json:"location"`
	ResumeURL   string            `json:"resumeUrl"`
	SocialLinks map[string]string `json:"socialLinks"` // platform name -> URL
	Skills      map[string]int    `json:"skills"`      // skill name -> proficiency 0-100
}

type Profile struct {
	ID int `json:"id"`
	InsertProfile
}

func (p *InsertProfile) Validate() error {
	ve := common.NewValidationError()
	if p.Name == "" {
		ve.Missing("name")
	}
	if p.Title == "" {
		ve.Missing("title")
	}
	if p.Bio == "" {
		ve.Missing("bio")
	}
	if p.Avatar == "" {
		ve.Missing("avatar")
	}
	if p.Email == "" {
		ve.Missing("email")
	}
	if p.Location == "" {
		ve.Missing("location")
	}
	if p.ResumeURL == "" {
		ve.Missing("resumeUrl")
	}
	if p.SocialLinks == nil {
		ve.Missing("socialLinks")
	}
	if p.Skills == nil {
		ve.Missing("skills")
	}
	for skill, proficiency := range p.Skills {
		if proficiency < 0 || proficiency > 100 {
			ve.Add("skills", "proficiency for "+skill+" must be between 0 and 100")
		}
	}
	return ve.OrNil()
}
