package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"bugtrail/middleware"
	"bugtrail/models"
	"bugtrail/store"
	"bugtrail/validators"
)

// Bugs serves the bug tracker routes. Unlike posts, bugs carry no ownership
// gate: anonymous callers may file them and any caller may update or delete
// them.
type Bugs struct {
	store store.Store
	log   *zap.Logger
}

func NewBugs(st store.Store, log *zap.Logger) *Bugs {
	return &Bugs{store: st, log: log}
}

type createBugRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateBugRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (h *Bugs) Create(c *gin.Context) {
	var req createBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if result := validators.ValidateBugInput(req.Title, req.Status); !result.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Errors})
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusOpen
	}

	// The reporter is recorded when the caller identity maps to a store id;
	// anything else files the bug anonymously.
	var reporter *primitive.ObjectID
	if ident, ok := middleware.CurrentIdentity(c); ok {
		if id, err := primitive.ObjectIDFromHex(ident.ID); err == nil {
			reporter = &id
		}
	}

	bug := &models.Bug{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Reporter:    reporter,
	}
	if err := h.store.CreateBug(c.Request.Context(), bug); err != nil {
		h.log.Error("Failed to create bug", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Bug reported", zap.String("bugId", bug.ID.Hex()), zap.String("title", bug.Title))
	c.JSON(http.StatusCreated, bugJSON(bug))
}

func (h *Bugs) List(c *gin.Context) {
	bugs, err := h.store.FindBugs(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to retrieve bugs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, len(bugs))
	for i := range bugs {
		out[i] = bugJSON(&bugs[i])
	}

	h.log.Info("Bugs retrieved", zap.Int("count", len(out)))
	c.JSON(http.StatusOK, out)
}

func (h *Bugs) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	bug, err := h.store.FindBugByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to retrieve bug", zap.String("bugId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bug == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.JSON(http.StatusOK, bugJSON(bug))
}

func (h *Bugs) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req updateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	bug, err := h.store.FindBugByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to update bug", zap.String("bugId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bug == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if req.Title != "" {
		bug.Title = req.Title
	}
	if req.Description != "" {
		bug.Description = req.Description
	}
	// An unknown status value on update is dropped, not rejected. Create-time
	// validation is stricter; tests pin this asymmetry.
	if req.Status != "" && models.ValidBugStatus(req.Status) {
		bug.Status = req.Status
	}

	if err := h.store.SaveBug(c.Request.Context(), bug); err != nil {
		h.log.Error("Failed to update bug", zap.String("bugId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Bug updated", zap.String("bugId", bug.ID.Hex()), zap.String("status", bug.Status))
	c.JSON(http.StatusOK, bugJSON(bug))
}

func (h *Bugs) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	bug, err := h.store.FindBugByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("Failed to delete bug", zap.String("bugId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bug == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.store.RemoveBug(c.Request.Context(), id); err != nil {
		h.log.Error("Failed to delete bug", zap.String("bugId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("Bug deleted", zap.String("bugId", bug.ID.Hex()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
