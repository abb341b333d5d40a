package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"bugtrail/middleware"
	"bugtrail/models"
	"bugtrail/store"
	"bugtrail/validators"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Posts serves the blog post routes. Creation requires an authenticated
// caller, and mutation and deletion are gated on the stored author.
type Posts struct {
	store store.Store
	log   *zap.Logger
}

func NewPosts(st store.Store, log *zap.Logger) *Posts {
	return &Posts{store: st, log: log}
}

type createPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Slug     string `json:"slug"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Posts) Create(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if result := validators.ValidatePostInput(req.Title, req.Content); !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Errors})
		return
	}

	author, err := primitive.ObjectIDFromHex(ident.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return
	}

	var category *primitive.ObjectID
	if req.Category != "" {
		id, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		category = &id
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Author:   author,
		Category: category,
		Slug:     slug,
	}
	if err := h.store.CreatePost(c.Request.Context(), post); err != nil {
		h.log.Error("Failed to create post", zap.Error(err), zap.String("userId", ident.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Post created",
		zap.String("postId", post.ID.Hex()),
		zap.String("userId", ident.ID),
		zap.String("title", post.Title),
	)
	c.JSON(http.StatusCreated, postJSON(post))
}

func (h *Posts) List(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	limit := queryInt(c, "limit", defaultLimit)

	filter := store.PostFilter{
		Skip:  (page - 1) * limit,
		Limit: limit,
	}
	if v := c.Query("category"); v != "" {
		id, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		filter.Category = &id
	}

	posts, err := h.store.FindPosts(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("Failed to retrieve posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, len(posts))
	for i := range posts {
		out[i] = postJSON(&posts[i])
	}

	h.log.Info("Posts retrieved",
		zap.Int("count", len(out)),
		zap.Int64("page", page),
		zap.Int64("limit", limit),
	)
	c.JSON(http.StatusOK, out)
}

func (h *Posts) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	post, err := h.store.FindPostByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to retrieve post", zap.String("postId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, postJSON(post))
}

func (h *Posts) Update(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	post, err := h.store.FindPostByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to update post", zap.String("postId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if post.Author.Hex() != ident.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// Partial update: only fields present in the payload overwrite.
	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}

	if err := h.store.SavePost(c.Request.Context(), post); err != nil {
		h.log.Error("Failed to update post", zap.String("postId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Post updated", zap.String("postId", post.ID.Hex()), zap.String("userId", ident.ID))
	c.JSON(http.StatusOK, postJSON(post))
}

func (h *Posts) Delete(c *gin.Context) {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	post, err := h.store.FindPostByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to delete post", zap.String("postId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if post.Author.Hex() != ident.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := h.store.RemovePost(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete post", zap.String("postId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Post deleted", zap.String("postId", post.ID.Hex()), zap.String("userId", ident.ID))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// queryInt reads a positive integer query parameter, falling back to def on
// absence or garbage.
func queryInt(c *gin.Context, name string, def int64) int64 {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// slugify derives a URL slug from a title: lowercase, whitespace runs
// collapsed to single dashes.
func slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}
