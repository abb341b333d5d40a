package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bug statuses. A stored bug always carries one of these three values;
// writes with anything else are rejected at create time.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
)

// ValidBugStatus reports whether s is one of the three bug statuses.
func ValidBugStatus(s string) bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusResolved
}

// Bug is a bug report. Reporter is optional: anonymous callers may file bugs,
// and no ownership check applies to bug mutation or deletion.
type Bug struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Title       string              `bson:"title"`
	Description string              `bson:"description,omitempty"`
	Status      string              `bson:"status"`
	Reporter    *primitive.ObjectID `bson:"reporter,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
}
