package service

import (
	"context"
	"errors"

	"github.com/gogotex/gogotex/backend/blog-service/internal/blog"
	"github.com/gogotex/gogotex/backend/blog-service/internal/blog/repository"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/metrics"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = repository.ErrNotFound
)

var (
	listProjection = repository.Projection{blog.FieldTitle, blog.FieldBody, blog.FieldAuthor}
	readProjection = repository.Projection{blog.FieldID, blog.FieldTitle, blog.FieldBody, blog.FieldAuthor}
)

// Service defines the blog operations used by the handler layer.
type Service interface {
	List(ctx context.Context, sort []repository.SortField) ([]*blog.Blog, error)
	Get(ctx context.Context, id string) (*blog.Blog, error)
	Create(ctx context.Context, in blog.CreateInput) (*blog.Blog, error)
	Remove(ctx context.Context, id string) (*blog.Blog, error)
	Ping(ctx context.Context) error
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return NewService(repository.NewMemoryRepo())
}

// NewMongoService returns a Service backed by a MongoDB collection.
// Caller is responsible for creating the collection (and client) and passing it in.
func NewMongoService(col *mongo.Collection) Service {
	return NewService(repository.NewMongoRepo(col))
}

// NewService wraps any Repository.
func NewService(repo repository.Repository) Service {
	return &blogService{repo: repo}
}

type blogService struct {
	repo repository.Repository
}

// List returns every blog that is not soft-deleted. An empty result is not an error.
func (s *blogService) List(ctx context.Context, sort []repository.SortField) ([]*blog.Blog, error) {
	list, err := s.repo.FindMany(ctx, repository.Filter{Deleted: blog.Bool(false)}, listProjection, sort)
	record("list", err)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Get returns ErrNotFound for unknown, malformed or soft-deleted ids.
func (s *blogService) Get(ctx context.Context, id string) (*blog.Blog, error) {
	oid, ok := parseID(id)
	if !ok {
		record("read", ErrNotFound)
		return nil, ErrNotFound
	}
	b, err := s.repo.FindOne(ctx, repository.Filter{ID: &oid, Deleted: blog.Bool(false)}, readProjection)
	record("read", err)
	return b, err
}

// Create validates the input before it reaches the store.
func (s *blogService) Create(ctx context.Context, in blog.CreateInput) (*blog.Blog, error) {
	if err := validation.Struct("blogs", in); err != nil {
		record("create", err)
		return nil, err
	}
	b, err := s.repo.Insert(ctx, &blog.Blog{Title: in.Title, Body: in.Body, Author: in.Author})
	record("create", err)
	return b, err
}

// Remove soft-deletes a live blog and returns the updated record.
func (s *blogService) Remove(ctx context.Context, id string) (*blog.Blog, error) {
	oid, ok := parseID(id)
	if !ok {
		record("remove", ErrNotFound)
		return nil, ErrNotFound
	}
	b, err := s.repo.FindOneAndUpdate(ctx,
		repository.Filter{ID: &oid, Deleted: blog.Bool(false)},
		repository.Patch{IsDeleted: blog.Bool(true)},
	)
	record("remove", err)
	return b, err
}

func (s *blogService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func parseID(id string) (primitive.ObjectID, bool) {
	if !blog.IsValidID(id) {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

func record(op string, err error) {
	var verr *validation.Error
	switch {
	case err == nil:
		metrics.CountOperation(op, "ok")
	case errors.Is(err, ErrNotFound):
		metrics.CountOperation(op, "not_found")
	case errors.As(err, &verr):
		metrics.CountOperation(op, "invalid")
	default:
		metrics.CountOperation(op, "error")
	}
}
