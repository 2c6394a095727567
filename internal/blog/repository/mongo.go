package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gogotex/gogotex/backend/blog-service/internal/blog"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository on a MongoDB collection. Identifiers are
// store-assigned ObjectIDs.
type MongoRepo struct {
	col *mongo.Collection
	now func() time.Time
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col, now: time.Now}
}

// EnsureIndexes creates the index backing the soft-delete filter used by every read.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: blog.FieldIsDeleted, Value: 1}}}
	_, err := m.col.Indexes().CreateOne(ctx, idx)
	return err
}

func (m *MongoRepo) Insert(ctx context.Context, b *blog.Blog) (*blog.Blog, error) {
	defer metrics.ObserveStoreOperation("insert", m.col.Name())()
	now := m.now().UTC().Truncate(time.Millisecond)
	doc := &blog.Blog{
		Title:     b.Title,
		Body:      b.Body,
		Author:    b.Author,
		IsDeleted: blog.Bool(false),
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc, nil
}

func (m *MongoRepo) FindMany(ctx context.Context, f Filter, p Projection, sortBy []SortField) ([]*blog.Blog, error) {
	defer metrics.ObserveStoreOperation("find", m.col.Name())()
	opts := options.Find()
	if proj := projectionDoc(p); proj != nil {
		opts.SetProjection(proj)
	}
	if s := sortDoc(sortBy); len(s) > 0 {
		opts.SetSort(s)
	}
	cur, err := m.col.Find(ctx, filterDoc(f), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*blog.Blog{}
	for cur.Next(ctx) {
		var d blog.Blog
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) FindOne(ctx context.Context, f Filter, p Projection) (*blog.Blog, error) {
	defer metrics.ObserveStoreOperation("find_one", m.col.Name())()
	opts := options.FindOne()
	if proj := projectionDoc(p); proj != nil {
		opts.SetProjection(proj)
	}
	var d blog.Blog
	if err := m.col.FindOne(ctx, filterDoc(f), opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo) FindOneAndUpdate(ctx context.Context, f Filter, patch Patch) (*blog.Blog, error) {
	defer metrics.ObserveStoreOperation("find_one_and_update", m.col.Name())()
	set := bson.M{blog.FieldUpdatedAt: m.now().UTC().Truncate(time.Millisecond)}
	if patch.IsDeleted != nil {
		set[blog.FieldIsDeleted] = *patch.IsDeleted
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d blog.Blog
	if err := m.col.FindOneAndUpdate(ctx, filterDoc(f), bson.M{"$set": set}, opts).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}

func filterDoc(f Filter) bson.M {
	q := bson.M{}
	if f.ID != nil {
		q[blog.FieldID] = *f.ID
	}
	if f.Deleted != nil {
		q[blog.FieldIsDeleted] = *f.Deleted
	}
	return q
}

func projectionDoc(p Projection) bson.D {
	if len(p) == 0 {
		return nil
	}
	d := make(bson.D, 0, len(p))
	for _, field := range p {
		d = append(d, bson.E{Key: field, Value: 1})
	}
	return d
}

func sortDoc(sortBy []SortField) bson.D {
	d := bson.D{}
	for _, s := range sortBy {
		dir := 1
		if s.Desc {
			dir = -1
		}
		d = append(d, bson.E{Key: s.Field, Value: dir})
	}
	return d
}
