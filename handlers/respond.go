package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bugtrail/models"
)

// hexOrNil normalizes an optional store identifier for transport: the hex
// string form, or nil when absent. Identifiers never leave the pipeline as
// store-native values.
func hexOrNil(id *primitive.ObjectID) any {
	if id == nil || id.IsZero() {
		return nil
	}
	return id.Hex()
}

func postJSON(p *models.Post) gin.H {
	return gin.H{
		"_id":       p.ID.Hex(),
		"title":     p.Title,
		"content":   p.Content,
		"author":    hexOrNil(&p.Author),
		"category":  hexOrNil(p.Category),
		"slug":      p.Slug,
		"createdAt": p.CreatedAt,
		"updatedAt": p.UpdatedAt,
	}
}

func bugJSON(b *models.Bug) gin.H {
	return gin.H{
		"_id":         b.ID.Hex(),
		"title":       b.Title,
		"description": b.Description,
		"status":      b.Status,
		"reporter":    hexOrNil(b.Reporter),
		"createdAt":   b.CreatedAt,
		"updatedAt":   b.UpdatedAt,
	}
}
