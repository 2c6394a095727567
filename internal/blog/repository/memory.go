package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gogotex/gogotex/backend/blog-service/internal/blog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used when no MongoDB URI is configured
// and in unit tests. Every operation holds the lock for its whole duration, so
// FindOneAndUpdate is atomic like its store counterpart.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]*blog.Blog
	order []primitive.ObjectID
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*blog.Blog), now: time.Now}
}

func (m *MemoryRepo) Insert(_ context.Context, b *blog.Blog) (*blog.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now().UTC()
	doc := &blog.Blog{
		ID:        primitive.NewObjectID(),
		Title:     b.Title,
		Body:      b.Body,
		Author:    b.Author,
		IsDeleted: blog.Bool(false),
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	m.store[doc.ID] = doc
	m.order = append(m.order, doc.ID)
	return clone(doc, nil), nil
}

func (m *MemoryRepo) FindMany(_ context.Context, f Filter, p Projection, sortBy []SortField) ([]*blog.Blog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*blog.Blog{}
	for _, id := range m.order {
		d := m.store[id]
		if matches(d, f) {
			out = append(out, d)
		}
	}
	if len(sortBy) > 0 {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j], sortBy) })
	}
	for i, d := range out {
		out[i] = clone(d, p)
	}
	return out, nil
}

func (m *MemoryRepo) FindOne(_ context.Context, f Filter, p Projection) (*blog.Blog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d := m.first(f)
	if d == nil {
		return nil, ErrNotFound
	}
	return clone(d, p), nil
}

func (m *MemoryRepo) FindOneAndUpdate(_ context.Context, f Filter, patch Patch) (*blog.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := m.first(f)
	if d == nil {
		return nil, ErrNotFound
	}
	if patch.IsDeleted != nil {
		d.IsDeleted = blog.Bool(*patch.IsDeleted)
	}
	now := m.now().UTC()
	d.UpdatedAt = &now
	return clone(d, nil), nil
}

func (m *MemoryRepo) Ping(context.Context) error { return nil }

func (m *MemoryRepo) first(f Filter) *blog.Blog {
	if f.ID != nil {
		d, ok := m.store[*f.ID]
		if !ok || !matches(d, f) {
			return nil
		}
		return d
	}
	for _, id := range m.order {
		if d := m.store[id]; matches(d, f) {
			return d
		}
	}
	return nil
}

func matches(d *blog.Blog, f Filter) bool {
	if f.ID != nil && d.ID != *f.ID {
		return false
	}
	if f.Deleted != nil && d.Deleted() != *f.Deleted {
		return false
	}
	return true
}

func less(a, b *blog.Blog, sortBy []SortField) bool {
	for _, s := range sortBy {
		c := compare(a, b, s.Field)
		if c == 0 {
			continue
		}
		if s.Desc {
			return c > 0
		}
		return c < 0
	}
	return false
}

func compare(a, b *blog.Blog, field string) int {
	switch field {
	case blog.FieldTitle:
		return strings.Compare(a.Title, b.Title)
	case blog.FieldBody:
		return strings.Compare(a.Body, b.Body)
	case blog.FieldAuthor:
		return strings.Compare(a.Author, b.Author)
	case blog.FieldCreatedAt:
		return compareTime(a.CreatedAt, b.CreatedAt)
	case blog.FieldUpdatedAt:
		return compareTime(a.UpdatedAt, b.UpdatedAt)
	}
	return 0
}

func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// clone copies d keeping only the projected fields.
func clone(d *blog.Blog, p Projection) *blog.Blog {
	out := &blog.Blog{ID: d.ID}
	keep := func(field string) bool {
		if len(p) == 0 {
			return true
		}
		for _, f := range p {
			if f == field {
				return true
			}
		}
		return false
	}
	if keep(blog.FieldTitle) {
		out.Title = d.Title
	}
	if keep(blog.FieldBody) {
		out.Body = d.Body
	}
	if keep(blog.FieldAuthor) {
		out.Author = d.Author
	}
	if keep(blog.FieldIsDeleted) && d.IsDeleted != nil {
		out.IsDeleted = blog.Bool(*d.IsDeleted)
	}
	if keep(blog.FieldCreatedAt) && d.CreatedAt != nil {
		t := *d.CreatedAt
		out.CreatedAt = &t
	}
	if keep(blog.FieldUpdatedAt) && d.UpdatedAt != nil {
		t := *d.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}
