package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog post owned by the identity that created it. Author is set
// once at creation and gates updates and deletion.
type Post struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Title     string              `bson:"title"`
	Content   string              `bson:"content"`
	Author    primitive.ObjectID  `bson:"author"`
	Category  *primitive.ObjectID `bson:"category,omitempty"`
	Slug      string              `bson:"slug"`
	CreatedAt time.Time           `bson:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}
