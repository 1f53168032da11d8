package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store bundles every repository behind one handle so application setup can
// swap the whole backing technology at once. Services and handlers only
// ever see the interfaces, never a concrete implementation.
type Store struct {
	Users           UserRepository
	Projects        ProjectRepository
	BlogPosts       BlogPostRepository
	TimelineEntries TimelineEntryRepository
	ContactMessages ContactMessageRepository
	Profile         ProfileRepository
	Sessions        SessionRepository
}

// NewMemoryStore returns the volatile map-backed store used for development
// and tests. Sessions expire through the cache's own TTL janitor.
func NewMemoryStore() *Store {
	return &Store{
		Users:           newMemUserRepository(),
		Projects:        newMemProjectRepository(),
		BlogPosts:       newMemBlogPostRepository(),
		TimelineEntries: newMemTimelineEntryRepository(),
		ContactMessages: newMemContactMessageRepository(),
		Profile:         newMemProfileRepository(),
		Sessions:        NewCacheSessionRepository(),
	}
}

// NewPostgresStore returns the durable store. Entity rows live in postgres,
// sessions in redis with their native TTL. Id counters are reconciled from
// MAX(id) per table at startup; see idSequence for the caveat.
func NewPostgresStore(ctx context.Context, db *sql.DB, rdb *redis.Client) (*Store, error) {
	store := &Store{Sessions: NewRedisSessionRepository(rdb)}

	for _, t := range []struct {
		table string
		bind  func(*idSequence)
	}{
		{"users", func(ids *idSequence) { store.Users = NewPgUserRepository(db, ids) }},
		{"projects", func(ids *idSequence) { store.Projects = NewPgProjectRepository(db, ids) }},
		{"blog_posts", func(ids *idSequence) { store.BlogPosts = NewPgBlogPostRepository(db, ids) }},
		{"timeline_entries", func(ids *idSequence) { store.TimelineEntries = NewPgTimelineEntryRepository(db, ids) }},
		{"contact_messages", func(ids *idSequence) { store.ContactMessages = NewPgContactMessageRepository(db, ids) }},
		{"profile", func(ids *idSequence) { store.Profile = NewPgProfileRepository(db, ids) }},
	} {
		ids, err := sequenceFromTable(ctx, db, t.table)
		if err != nil {
			return nil, err
		}
		t.bind(ids)
	}

	return store, nil
}

// idSequence hands out per-entity ids, strictly increasing and starting at 1.
// Counters are in-process integers: two processes writing to the same
// database would race on Next. Single-writer deployments only.
type idSequence struct {
	mu   sync.Mutex
	next int
}

func newIDSequence(start int) *idSequence {
	if start < 1 {
		start = 1
	}
	return &idSequence{next: start}
}

func (s *idSequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

func sequenceFromTable(ctx context.Context, db *sql.DB, table string) (*idSequence, error) {
	var max int
	if err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) FROM `+table).Scan(&max); err != nil {
		return nil, fmt.Errorf("reading max id from %s: %w", table, err)
	}
	return newIDSequence(max + 1), nil
}
