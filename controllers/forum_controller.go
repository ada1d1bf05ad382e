package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/utils"
)

// ForumController manages forum categories.
type ForumController struct {
	db *gorm.DB
}

// NewForumController creates a ForumController.
func NewForumController(db *gorm.DB) *ForumController {
	return &ForumController{db: db}
}

// List returns every category with live-computed topic and post aggregates.
// The LEFT JOIN keeps zero-topic categories in the result with zero counts;
// the aggregates are recomputed on every read, never stored.
func (f *ForumController) List(ctx *gin.Context) {
	categories := make([]models.CategorySummary, 0)
	err := f.db.Model(&models.ForumCategory{}).
		Select("forum_categories.*, COUNT(DISTINCT topics.id) AS topics_count, COALESCE(SUM(topics.replies_count), 0) AS total_posts").
		Joins("LEFT JOIN topics ON topics.category_id = forum_categories.id").
		Group("forum_categories.id").
		Order("forum_categories.sort_order, forum_categories.id").
		Scan(&categories).Error
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.JSON(ctx, http.StatusOK, categories)
}

// Create inserts a new category.
func (f *ForumController) Create(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Gradient    string `json:"gradient"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		utils.Error(ctx, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Icon == "" {
		req.Icon = "MessageSquare"
	}
	if req.Gradient == "" {
		req.Gradient = "gradient-purple-pink"
	}

	category := models.ForumCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Gradient:    req.Gradient,
	}
	if err := f.db.Create(&category).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.JSON(ctx, http.StatusCreated, category)
}
