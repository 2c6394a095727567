package repository

import (
	"context"
	"errors"

	"github.com/gogotex/gogotex/backend/blog-service/internal/blog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned by single-record operations when no document matches.
	ErrNotFound = errors.New("blog not found")
)

// Filter selects documents. Nil fields do not constrain the match.
type Filter struct {
	ID      *primitive.ObjectID
	Deleted *bool
}

// Projection lists the fields to return. The identifier is always returned.
// An empty projection returns every field.
type Projection []string

// SortField orders by one field; Desc flips the direction.
type SortField struct {
	Field string
	Desc  bool
}

// Patch holds the fields a FindOneAndUpdate may change.
type Patch struct {
	IsDeleted *bool
}

// Repository is the data-access contract for blogs.
type Repository interface {
	Insert(ctx context.Context, b *blog.Blog) (*blog.Blog, error)
	FindMany(ctx context.Context, f Filter, p Projection, sort []SortField) ([]*blog.Blog, error)
	FindOne(ctx context.Context, f Filter, p Projection) (*blog.Blog, error)
	FindOneAndUpdate(ctx context.Context, f Filter, patch Patch) (*blog.Blog, error)
	Ping(ctx context.Context) error
}

// SortableFields are the fields FindMany accepts in a sort.
var SortableFields = map[string]bool{
	blog.FieldTitle:     true,
	blog.FieldBody:      true,
	blog.FieldAuthor:    true,
	blog.FieldCreatedAt: true,
	blog.FieldUpdatedAt: true,
}
