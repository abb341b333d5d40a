package store

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bugtrail/models"
)

// Memory is an in-process Store used by tests. It preserves insertion order
// for listings and remembers the skip/limit of the last post query so tests
// can assert pagination arithmetic.
type Memory struct {
	mu        sync.Mutex
	posts     map[primitive.ObjectID]models.Post
	postOrder []primitive.ObjectID
	bugs      map[primitive.ObjectID]models.Bug
	bugOrder  []primitive.ObjectID

	lastSkip  int64
	lastLimit int64
}

func NewMemory() *Memory {
	return &Memory{
		posts: make(map[primitive.ObjectID]models.Post),
		bugs:  make(map[primitive.ObjectID]models.Bug),
	}
}

// LastPostQuery returns the skip and limit of the most recent FindPosts call.
func (m *Memory) LastPostQuery() (skip, limit int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSkip, m.lastLimit
}

func (m *Memory) CreatePost(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	m.posts[post.ID] = *post
	m.postOrder = append(m.postOrder, post.ID)
	return nil
}

func (m *Memory) FindPosts(_ context.Context, filter PostFilter) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSkip = filter.Skip
	m.lastLimit = filter.Limit

	matched := make([]models.Post, 0, len(m.postOrder))
	for _, id := range m.postOrder {
		post := m.posts[id]
		if filter.Category != nil && (post.Category == nil || *post.Category != *filter.Category) {
			continue
		}
		matched = append(matched, post)
	}

	if filter.Skip >= int64(len(matched)) {
		return nil, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit > 0 && filter.Limit < int64(len(matched)) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (m *Memory) FindPostByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func (m *Memory) SavePost(_ context.Context, post *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post.UpdatedAt = time.Now().UTC()
	m.posts[post.ID] = *post
	return nil
}

func (m *Memory) RemovePost(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	m.postOrder = removeID(m.postOrder, id)
	return nil
}

func (m *Memory) CreateBug(_ context.Context, bug *models.Bug) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	bug.ID = primitive.NewObjectID()
	bug.CreatedAt = now
	bug.UpdatedAt = now
	m.bugs[bug.ID] = *bug
	m.bugOrder = append(m.bugOrder, bug.ID)
	return nil
}

func (m *Memory) FindBugs(_ context.Context) ([]models.Bug, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bugs := make([]models.Bug, 0, len(m.bugOrder))
	for _, id := range m.bugOrder {
		bugs = append(bugs, m.bugs[id])
	}
	return bugs, nil
}

func (m *Memory) FindBugByID(_ context.Context, id primitive.ObjectID) (*models.Bug, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bug, ok := m.bugs[id]
	if !ok {
		return nil, nil
	}
	return &bug, nil
}

func (m *Memory) SaveBug(_ context.Context, bug *models.Bug) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bug.UpdatedAt = time.Now().UTC()
	m.bugs[bug.ID] = *bug
	return nil
}

func (m *Memory) RemoveBug(_ context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bugs, id)
	m.bugOrder = removeID(m.bugOrder, id)
	return nil
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
