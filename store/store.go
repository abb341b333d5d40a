// Package store is the document store boundary. Handlers only see the Store
// interface; the Mongo implementation backs the server and Memory backs the
// tests.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bugtrail/models"
)

// PostFilter narrows and pages a post listing. Skip and Limit are passed to
// the store query as-is.
type PostFilter struct {
	Category *primitive.ObjectID
	Skip     int64
	Limit    int64
}

// Store is the CRUD contract over the post and bug collections. Create
// assigns the record id and both timestamps; Save persists an in-place
// mutation and bumps the modification timestamp; FindXByID returns
// (nil, nil) when no record matches.
type Store interface {
	CreatePost(ctx context.Context, post *models.Post) error
	FindPosts(ctx context.Context, filter PostFilter) ([]models.Post, error)
	FindPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	SavePost(ctx context.Context, post *models.Post) error
	RemovePost(ctx context.Context, id primitive.ObjectID) error

	CreateBug(ctx context.Context, bug *models.Bug) error
	FindBugs(ctx context.Context) ([]models.Bug, error)
	FindBugByID(ctx context.Context, id primitive.ObjectID) (*models.Bug, error)
	SaveBug(ctx context.Context, bug *models.Bug) error
	RemoveBug(ctx context.Context, id primitive.ObjectID) error
}
