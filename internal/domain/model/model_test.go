package model

import (
	"errors"
	"testing"

	"devfolio/internal/common"
)

func TestInsertProjectValidateReportsMissingFields(t *testing.T) {
	insert := InsertProject{Title: "only a title"}
	err := insert.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *common.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *common.ValidationError, got %T", err)
	}
	for _, field := range []string{"description", "thumbnail", "category", "techStack"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("expected %q in field detail, got %v", field, ve.Fields)
		}
	}
	if _, ok := ve.Fields["title"]; ok {
		t.Error("title was provided but still flagged")
	}
}

func TestInsertProjectValidateAcceptsOptionalURLs(t *testing.T) {
	insert := InsertProject{
		Title:       "t",
		Description: "d",
		Thumbnail:   "/uploads/x.png",
		Category:    "Web",
		TechStack:   []string{},
	}
	if err := insert.Validate(); err != nil {
		t.Fatalf("liveUrl and githubUrl are optional, got %v", err)
	}
}

func TestInsertUserValidateRejectsUnknownRole(t *testing.T) {
	insert := InsertUser{Username: "u", Password: "p", Name: "n", Email: "e@x.com", Role: "superuser"}
	err := insert.Validate()
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error for role, got %v", err)
	}

	insert.Role = RoleAdmin
	if err := insert.Validate(); err != nil {
		t.Fatalf("admin role must be accepted, got %v", err)
	}
	insert.Role = ""
	if err := insert.Validate(); err != nil {
		t.Fatalf("empty role defaults later, must be accepted, got %v", err)
	}
}

func TestInsertProfileValidateBoundsSkills(t *testing.T) {
	insert := InsertProfile{
		Name:        "n",
		Title:       "t",
		Bio:         "b",
		Avatar:      "/uploads/a.png",
		Email:       "e@x.com",
		Location:    "l",
		ResumeURL:   "/uploads/r.pdf",
		SocialLinks: map[string]string{"github": "https://github.com/x"},
		Skills:      map[string]int{"Go": 101},
	}
	if err := insert.Validate(); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error for out-of-range skill, got %v", err)
	}

	insert.Skills["Go"] = 100
	if err := insert.Validate(); err != nil {
		t.Fatalf("100 is a valid proficiency, got %v", err)
	}
}

func TestInsertContactMessageValidate(t *testing.T) {
	insert := InsertContactMessage{Name: "A", Email: "a@b.com", Subject: "Hi", Message: "test"}
	if err := insert.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	insert.Message = ""
	if err := insert.Validate(); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBlogPostSlugFollowsTitle(t *testing.T) {
	insert := InsertBlogPost{Title: "Hello, World! Again"}
	if got := insert.DeriveSlug(); got != "hello-world-again" {
		t.Errorf("unexpected slug %q", got)
	}
}
