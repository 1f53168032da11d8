package repository

// The in-memory store. Every repository here mirrors the observable
// behavior of its postgres counterpart exactly; the router tests rely on
// that interchangeability.

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
)

type memUserRepository struct {
	mu    sync.RWMutex
	users map[int]model.User
	ids   *idSequence
}

func newMemUserRepository() UserRepository {
	return &memUserRepository{users: make(map[int]model.User), ids: newIDSequence(1)}
}

func (r *memUserRepository) GetAll(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memUserRepository) GetByID(_ context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}

func (r *memUserRepository) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUserRepository) Create(_ context.Context, insert model.InsertUser) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == insert.Username {
			return nil, fmt.Errorf("username already taken: %w", common.ErrConflict)
		}
	}
	user := model.User{
		ID:       r.ids.Next(),
		Username: insert.Username,
		Password: insert.Password,
		Name:     insert.Name,
		Email:    insert.Email,
		Role:     insert.Role,
	}
	r.users[user.ID] = user
	return &user, nil
}

func (r *memUserRepository) UpdateRole(_ context.Context, id int, role string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	user.Role = role
	r.users[id] = user
	return &user, nil
}

func (r *memUserRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memProjectRepository struct {
	mu       sync.RWMutex
	projects map[int]model.Project
	ids      *idSequence
}

func newMemProjectRepository() ProjectRepository {
	return &memProjectRepository{projects: make(map[int]model.Project), ids: newIDSequence(1)}
}

func (r *memProjectRepository) GetAll(_ context.Context) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	projects := make([]model.Project, 0, len(r.projects))
	for _, project := range r.projects {
		projects = append(projects, project)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *memProjectRepository) GetByID(_ context.Context, id int) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.projects[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &project, nil
}

func (r *memProjectRepository) Create(_ context.Context, insert model.InsertProject) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project := model.Project{
		ID:            r.ids.Next(),
		InsertProject: insert,
		CreatedAt:     time.Now().UTC(),
	}
	r.projects[project.ID] = project
	return &project, nil
}

func (r *memProjectRepository) Update(_ context.Context, id int, insert model.InsertProject) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	existing.InsertProject = insert
	r.projects[id] = existing
	return &existing, nil
}

func (r *memProjectRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.projects, id)
	return nil
}

type memBlogPostRepository struct {
	mu    sync.RWMutex
	posts map[int]model.BlogPost
	ids   *idSequence
}

func newMemBlogPostRepository() BlogPostRepository {
	return &memBlogPostRepository{posts: make(map[int]model.BlogPost), ids: newIDSequence(1)}
}

func (r *memBlogPostRepository) GetAll(_ context.Context) ([]model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]model.BlogPost, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (r *memBlogPostRepository) GetByID(_ context.Context, id int) (*model.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &post, nil
}

func (r *memBlogPostRepository) Create(_ context.Context, insert model.InsertBlogPost) (*model.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post := model.BlogPost{
		ID:             r.ids.Next(),
		InsertBlogPost: insert,
		Slug:           insert.DeriveSlug(),
		PublishedAt:    time.Now().UTC(),
	}
	r.posts[post.ID] = post
	return &post, nil
}

func (r *memBlogPostRepository) Update(_ context.Context, id int, insert model.InsertBlogPost) (*model.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	existing.InsertBlogPost = insert
	existing.Slug = insert.DeriveSlug()
	r.posts[id] = existing
	return &existing, nil
}

func (r *memBlogPostRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

type memTimelineEntryRepository struct {
	mu      sync.RWMutex
	entries map[int]model.TimelineEntry
	ids     *idSequence
}

func newMemTimelineEntryRepository() TimelineEntryRepository {
	return &memTimelineEntryRepository{entries: make(map[int]model.TimelineEntry), ids: newIDSequence(1)}
}

func (r *memTimelineEntryRepository) GetAll(_ context.Context) ([]model.TimelineEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]model.TimelineEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	// Ascending by order; equal orders keep insertion (id) order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Order != entries[j].Order {
			return entries[i].Order < entries[j].Order
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (r *memTimelineEntryRepository) GetByID(_ context.Context, id int) (*model.TimelineEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &entry, nil
}

func (r *memTimelineEntryRepository) Create(_ context.Context, insert model.InsertTimelineEntry) (*model.TimelineEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := model.TimelineEntry{
		ID:                  r.ids.Next(),
		InsertTimelineEntry: insert,
	}
	r.entries[entry.ID] = entry
	return &entry, nil
}

func (r *memTimelineEntryRepository) Update(_ context.Context, id int, insert model.InsertTimelineEntry) (*model.TimelineEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	existing.InsertTimelineEntry = insert
	r.entries[id] = existing
	return &existing, nil
}

func (r *memTimelineEntryRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

type memContactMessageRepository struct {
	mu       sync.RWMutex
	messages map[int]model.ContactMessage
	ids      *idSequence
}

func newMemContactMessageRepository() ContactMessageRepository {
	return &memContactMessageRepository{messages: make(map[int]model.ContactMessage), ids: newIDSequence(1)}
}

func (r *memContactMessageRepository) GetAll(_ context.Context) ([]model.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	messages := make([]model.ContactMessage, 0, len(r.messages))
	for _, msg := range r.messages {
		messages = append(messages, msg)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (r *memContactMessageRepository) GetByID(_ context.Context, id int) (*model.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msg, ok := r.messages[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &msg, nil
}

func (r *memContactMessageRepository) Create(_ context.Context, insert model.InsertContactMessage) (*model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg := model.ContactMessage{
		ID:                   r.ids.Next(),
		InsertContactMessage: insert,
		IsRead:               false,
		CreatedAt:            time.Now().UTC(),
	}
	r.messages[msg.ID] = msg
	return &msg, nil
}

func (r *memContactMessageRepository) MarkAsRead(_ context.Context, id int) (*model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg, ok := r.messages[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	msg.IsRead = true
	r.messages[id] = msg
	return &msg, nil
}

func (r *memContactMessageRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, id)
	return nil
}

type memProfileRepository struct {
	mu      sync.RWMutex
	profile *model.Profile
	ids     *idSequence
}

func newMemProfileRepository() ProfileRepository {
	return &memProfileRepository{ids: newIDSequence(1)}
}

func (r *memProfileRepository) Get(_ context.Context) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return nil, common.ErrNotFound
	}
	profile := *r.profile
	return &profile, nil
}

func (r *memProfileRepository) Upsert(_ context.Context, insert model.InsertProfile) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.profile == nil {
		r.profile = &model.Profile{ID: r.ids.Next(), InsertProfile: insert}
	} else {
		r.profile.InsertProfile = insert
	}
	profile := *r.profile
	return &profile, nil
}
