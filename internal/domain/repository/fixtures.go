package repository

import (
	"context"
	"errors"
	"fmt"

	"devfolio/internal/common"
	"devfolio/internal/common/security"
	"devfolio/internal/domain/model"
)

// SeedFixtures fills empty collections with sample portfolio content so a
// fresh instance renders a complete site. Collections that already hold
// data are left alone, which also makes seeding safe to run on every start.
func SeedFixtures(ctx context.Context, store *Store) error {
	projects, err := store.Projects.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}
	if len(projects) == 0 {
		for _, insert := range fixtureProjects() {
			if _, err := store.Projects.Create(ctx, insert); err != nil {
				return fmt.Errorf("seeding projects: %w", err)
			}
		}
	}

	posts, err := store.BlogPosts.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seeding blog posts: %w", err)
	}
	if len(posts) == 0 {
		for _, insert := range fixtureBlogPosts() {
			if _, err := store.BlogPosts.Create(ctx, insert); err != nil {
				return fmt.Errorf("seeding blog posts: %w", err)
			}
		}
	}

	entries, err := store.TimelineEntries.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("seeding timeline: %w", err)
	}
	if len(entries) == 0 {
		for _, insert := range fixtureTimeline() {
			if _, err := store.TimelineEntries.Create(ctx, insert); err != nil {
				return fmt.Errorf("seeding timeline: %w", err)
			}
		}
	}

	if _, err := store.Profile.Get(ctx); errors.Is(err, common.ErrNotFound) {
		if _, err := store.Profile.Upsert(ctx, fixtureProfile()); err != nil {
			return fmt.Errorf("seeding profile: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("seeding profile: %w", err)
	}

	return nil
}

// SeedAdmin creates the bootstrap admin account unless the username is
// already taken.
func SeedAdmin(ctx context.Context, store *Store, username, password, name, email string) error {
	_, err := store.Users.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("seeding admin: %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	_, err = store.Users.Create(ctx, model.InsertUser{
		Username: username,
		Password: hash,
		Name:     name,
		Email:    email,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func fixtureProjects() []model.InsertProject {
	return []model.InsertProject{
		{
			Title:       "E-Commerce Platform",
			Description: "A full-featured e-commerce platform with product management, shopping cart, payment processing, and order tracking.",
			Thumbnail:   "/uploads/samples/ecommerce.jpg",
			LiveURL:     strPtr("https://ecommerce.example.com"),
			GithubURL:   strPtr("https://github.com/example/ecommerce-platform"),
			Category:    "Full-Stack",
			TechStack:   []string{"React", "Node.js", "PostgreSQL", "Stripe"},
			Featured:    true,
		},
		{
			Title:       "Task Management App",
			Description: "A collaborative task manager with boards, drag-and-drop lists, and realtime presence indicators.",
			Thumbnail:   "/uploads/samples/tasks.jpg",
			GithubURL:   strPtr("https://github.com/example/task-manager"),
			Category:    "Web App",
			TechStack:   []string{"Vue", "Go", "Redis"},
			Featured:    false,
		},
	}
}

func fixtureBlogPosts() []model.InsertBlogPost {
	return []model.InsertBlogPost{
		{
			Title:     "Lessons From Shipping My First Side Project",
			Content:   "Shipping beats polishing.\n\nThe hardest part of a side project is not the code, it is deciding the feature list is done. This post walks through how I scoped, built, and launched in six weekends.",
			Thumbnail: "/uploads/samples/shipping.jpg",
			Excerpt:   "How I scoped, built, and launched a side project in six weekends.",
			Category:  "Career",
		},
		{
			Title:     "A Practical Introduction to Database Indexing",
			Content:   "Indexes are the difference between a query that returns in milliseconds and one that times out.\n\nWe will cover B-trees, composite indexes, and how to read a query plan without fear.",
			Thumbnail: "/uploads/samples/indexing.jpg",
			Excerpt:   "B-trees, composite indexes, and reading query plans without fear.",
			Category:  "Databases",
		},
	}
}

func fixtureTimeline() []model.InsertTimelineEntry {
	return []model.InsertTimelineEntry{
		{
			Title:       "Senior Full-Stack Developer",
			Company:     "Tech Innovations Inc.",
			Description: "Leading a team of five developers building scalable web applications. Introduced CI/CD pipelines and cut page load times by 40%.",
			DateRange:   "2022 - Present",
			Skills:      []string{"React", "Node.js", "AWS", "Team Leadership"},
			Order:       1,
		},
		{
			Title:       "Full-Stack Developer",
			Company:     "WebSolutions Co.",
			Description: "Developed and maintained client projects, integrated third-party APIs and payment gateways, and optimized database queries.",
			DateRange:   "2020 - 2022",
			Skills:      []string{"React", "Express", "MongoDB", "REST APIs"},
			Order:       2,
		},
		{
			Title:       "Bachelor of Science in Computer Science",
			Company:     "Stanford University",
			Description: "Graduated with honors, specializing in software engineering and machine learning.",
			DateRange:   "2016 - 2020",
			Skills:      []string{"Algorithms", "Data Structures", "Machine Learning"},
			Order:       3,
		},
	}
}

func fixtureProfile() model.InsertProfile {
	return model.InsertProfile{
		Name:      "Alex Morgan",
		Title:     "Full-Stack Developer",
		Bio:       "I build fast, accessible web applications and write about what I learn along the way.",
		Avatar:    "/uploads/samples/avatar.jpg",
		Email:     "hello@example.com",
		Location:  "San Francisco, CA",
		ResumeURL: "/uploads/samples/resume.pdf",
		SocialLinks: map[string]string{
			"github":   "https://github.com/example",
			"linkedin": "https://linkedin.com/in/example",
			"twitter":  "https://twitter.com/example",
		},
		Skills: map[string]int{
			"JavaScript": 95,
			"Go":         85,
			"React":      90,
			"PostgreSQL": 80,
		},
	}
}
