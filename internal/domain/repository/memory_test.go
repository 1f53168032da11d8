package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"devfolio/internal/common"
	"devfolio/internal/domain/model"
)

func validProject(title string) model.InsertProject {
	return model.InsertProject{
		Title:       title,
		Description: "A project",
		Thumbnail:   "/uploads/thumb.png",
		Category:    "Web",
		TechStack:   []string{"Go"},
	}
}

func validTimelineEntry(title string, order int) model.InsertTimelineEntry {
	return model.InsertTimelineEntry{
		Title:       title,
		Company:     "Acme",
		Description: "Did things",
		DateRange:   "2020 - 2022",
		Skills:      []string{"Go"},
		Order:       order,
	}
}

func TestProjectIDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Projects.Create(ctx, validProject("one"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := store.Projects.Create(ctx, validProject("two"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	// Deleting must not free the id for reuse.
	if err := store.Projects.Delete(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third, err := store.Projects.Create(ctx, validProject("three"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.ID != 3 {
		t.Fatalf("expected id 3 after delete, got %d", third.ID)
	}
}

func TestProjectUpdateKeepsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created, err := store.Projects.Create(ctx, validProject("before"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := store.Projects.Update(ctx, created.ID, validProject("after"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" {
		t.Errorf("title not replaced, got %q", updated.Title)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: %d -> %d", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed on update: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateAbsentIDReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Projects.Update(ctx, 42, validProject("x")); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("project update: expected ErrNotFound, got %v", err)
	}
	if _, err := store.BlogPosts.Update(ctx, 42, model.InsertBlogPost{Title: "t"}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("blog post update: expected ErrNotFound, got %v", err)
	}
	if _, err := store.TimelineEntries.Update(ctx, 42, validTimelineEntry("x", 1)); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("timeline update: expected ErrNotFound, got %v", err)
	}
	if _, err := store.ContactMessages.MarkAsRead(ctx, 42); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("mark as read: expected ErrNotFound, got %v", err)
	}
}

func TestGetByIDAbsentReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Projects.GetByID(ctx, 7); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	created, err := store.Projects.Create(ctx, validProject("one"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Projects.Delete(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Projects.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}

	projects, err := store.Projects.GetAll(ctx)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected empty store, got %d projects", len(projects))
	}
}

func TestTimelineSortedByOrderWithInsertionTies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Created out of order, with two entries sharing order 2.
	b, _ := store.TimelineEntries.Create(ctx, validTimelineEntry("b", 2))
	a, _ := store.TimelineEntries.Create(ctx, validTimelineEntry("a", 1))
	c, _ := store.TimelineEntries.Create(ctx, validTimelineEntry("c", 2))

	entries, err := store.TimelineEntries.GetAll(ctx)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	got := []int{entries[0].ID, entries[1].ID, entries[2].ID}
	want := []int{a.ID, b.ID, c.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected id order %v, got %v", want, got)
		}
	}
}

func TestTimelineInsertBetweenLeavesNeighborsAlone(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	store.TimelineEntries.Create(ctx, validTimelineEntry("first", 1))
	store.TimelineEntries.Create(ctx, validTimelineEntry("last", 3))
	store.TimelineEntries.Create(ctx, validTimelineEntry("middle", 2))

	entries, err := store.TimelineEntries.GetAll(ctx)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	orders := []int{entries[0].Order, entries[1].Order, entries[2].Order}
	if orders[0] != 1 || orders[1] != 2 || orders[2] != 3 {
		t.Errorf("expected stored orders 1,2,3 to survive, got %v", orders)
	}
	if entries[1].Title != "middle" {
		t.Errorf("expected inserted entry in the middle, got %q", entries[1].Title)
	}
}

func TestMarkAsReadIsMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	msg, err := store.ContactMessages.Create(ctx, model.InsertContactMessage{
		Name: "A", Email: "a@b.com", Subject: "Hi", Message: "test",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if msg.IsRead {
		t.Fatal("new message must start unread")
	}

	read, err := store.ContactMessages.MarkAsRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("markAsRead: %v", err)
	}
	if !read.IsRead {
		t.Fatal("markAsRead did not set isRead")
	}

	// A second call keeps it read; there is no way back.
	again, err := store.ContactMessages.MarkAsRead(ctx, msg.ID)
	if err != nil {
		t.Fatalf("second markAsRead: %v", err)
	}
	if !again.IsRead {
		t.Fatal("isRead reverted")
	}
	fetched, err := store.ContactMessages.GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("getByID: %v", err)
	}
	if !fetched.IsRead {
		t.Fatal("stored message lost its read flag")
	}
}

func TestProfileIsASingleton(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.Profile.Get(ctx); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first upsert, got %v", err)
	}

	first, err := store.Profile.Upsert(ctx, fixtureProfile())
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	update := fixtureProfile()
	update.Name = "Someone Else"
	second, err := store.Profile.Upsert(ctx, update)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a second profile: id %d then %d", first.ID, second.ID)
	}
	if second.Name != "Someone Else" {
		t.Errorf("upsert did not replace fields, got %q", second.Name)
	}
}

func TestUserUsernameUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	insert := model.InsertUser{Username: "jo", Password: "hash", Name: "Jo", Email: "jo@x.com", Role: model.RoleUser}
	if _, err := store.Users.Create(ctx, insert); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Users.Create(ctx, insert); !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate username, got %v", err)
	}
}

func TestCacheSessionsExpire(t *testing.T) {
	ctx := context.Background()
	sessions := NewCacheSessionRepository()

	if err := sessions.Create(ctx, "tok", 7, 10*time.Millisecond); err != nil {
		t.Fatalf("create: %v", err)
	}
	userID, err := sessions.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := sessions.Get(ctx, "tok"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}

	if err := sessions.Create(ctx, "tok2", 8, time.Hour); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := sessions.Delete(ctx, "tok2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := sessions.Get(ctx, "tok2"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSeedFixturesOnlyFillsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := SeedFixtures(ctx, store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	projects, _ := store.Projects.GetAll(ctx)
	if len(projects) == 0 {
		t.Fatal("expected fixture projects")
	}

	// Running again must not duplicate anything.
	if err := SeedFixtures(ctx, store); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, _ := store.Projects.GetAll(ctx)
	if len(again) != len(projects) {
		t.Fatalf("reseeding duplicated projects: %d -> %d", len(projects), len(again))
	}
}
