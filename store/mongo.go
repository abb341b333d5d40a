package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bugtrail/models"
)

// Mongo implements Store on top of a MongoDB database. The driver handles
// connection pooling, so one Mongo value serves arbitrarily many concurrent
// requests.
type Mongo struct {
	posts *mongo.Collection
	bugs  *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		posts: db.Collection("posts"),
		bugs:  db.Collection("bugs"),
	}
}

func (m *Mongo) CreatePost(ctx context.Context, post *models.Post) error {
	now := time.Now().UTC()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now
	_, err := m.posts.InsertOne(ctx, post)
	return err
}

func (m *Mongo) FindPosts(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	opts := options.Find().SetSkip(filter.Skip).SetLimit(filter.Limit)
	cursor, err := m.posts.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mongo) FindPostByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := m.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (m *Mongo) SavePost(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now().UTC()
	_, err := m.posts.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	return err
}

func (m *Mongo) RemovePost(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.posts.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (m *Mongo) CreateBug(ctx context.Context, bug *models.Bug) error {
	now := time.Now().UTC()
	bug.ID = primitive.NewObjectID()
	bug.CreatedAt = now
	bug.UpdatedAt = now
	_, err := m.bugs.InsertOne(ctx, bug)
	return err
}

func (m *Mongo) FindBugs(ctx context.Context) ([]models.Bug, error) {
	cursor, err := m.bugs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bugs []models.Bug
	if err := cursor.All(ctx, &bugs); err != nil {
		return nil, err
	}
	return bugs, nil
}

func (m *Mongo) FindBugByID(ctx context.Context, id primitive.ObjectID) (*models.Bug, error) {
	var bug models.Bug
	err := m.bugs.FindOne(ctx, bson.M{"_id": id}).Decode(&bug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bug, nil
}

func (m *Mongo) SaveBug(ctx context.Context, bug *models.Bug) error {
	bug.UpdatedAt = time.Now().UTC()
	_, err := m.bugs.ReplaceOne(ctx, bson.M{"_id": bug.ID}, bug)
	return err
}

func (m *Mongo) RemoveBug(ctx context.Context, id primitive.ObjectID) error {
	_, err := m.bugs.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
