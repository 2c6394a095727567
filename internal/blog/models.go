package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is the persisted blog document. Optional fields are pointers so that a
// projected read leaves non-selected fields out of the JSON output.
type Blog struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string             `json:"title,omitempty" bson:"title,omitempty"`
	Body      string             `json:"body,omitempty" bson:"body,omitempty"`
	Author    string             `json:"author,omitempty" bson:"author,omitempty"`
	IsDeleted *bool              `json:"is_deleted,omitempty" bson:"is_deleted,omitempty"`
	CreatedAt *time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Deleted reports whether the soft-delete flag is set.
func (b *Blog) Deleted() bool {
	return b.IsDeleted != nil && *b.IsDeleted
}

// CreateInput is the accepted create payload.
type CreateInput struct {
	Title  string `json:"title" validate:"required,notblank"`
	Body   string `json:"body" validate:"required,notblank"`
	Author string `json:"author" validate:"required,notblank"`
}

// Field names as stored in the collection.
const (
	FieldID        = "_id"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldAuthor    = "author"
	FieldIsDeleted = "is_deleted"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// IsValidID reports whether id is a non-empty store-native identifier.
func IsValidID(id string) bool {
	return id != "" && primitive.IsValidObjectID(id)
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
