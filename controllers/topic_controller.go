package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/utils"
)

const topicAuthorSelect = "topics.*, users.username AS author_name, users.avatar_url AS author_avatar, users.role AS author_role"

// TopicController manages discussion topics.
type TopicController struct {
	db *gorm.DB
}

// NewTopicController creates a TopicController.
func NewTopicController(db *gorm.DB) *TopicController {
	return &TopicController{db: db}
}

// Get serves GET /topics: the detail view when an id query parameter is
// present, the listing otherwise.
func (t *TopicController) Get(ctx *gin.Context) {
	if id := strings.TrimSpace(ctx.Query("id")); id != "" {
		t.detail(ctx, id)
		return
	}
	t.list(ctx, strings.TrimSpace(ctx.Query("category_id")))
}

// detail bumps the view counter and reads the topic with its author and its
// ordered replies, all in one transaction so concurrent viewers cannot lose
// increments. The bump runs before the existence check; for a missing id it
// matches zero rows and the commit is a no-op.
func (t *TopicController) detail(ctx *gin.Context, idParam string) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		utils.Error(ctx, http.StatusNotFound, "Topic not found")
		return
	}

	var view models.TopicView
	found := false
	err = t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Topic{}).Where("id = ?", id).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
			return err
		}

		res := tx.Table("topics").
			Select(topicAuthorSelect+", users.posts_count AS author_posts").
			Joins("LEFT JOIN users ON users.id = topics.user_id").
			Where("topics.id = ?", id).
			Scan(&view)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		found = true

		posts := make([]models.PostView, 0)
		if err := tx.Table("posts").
			Select("posts.*, users.username AS author_name, users.avatar_url AS author_avatar, users.role AS author_role, users.posts_count AS author_posts").
			Joins("LEFT JOIN users ON users.id = posts.user_id").
			Where("posts.topic_id = ?", id).
			Order("posts.created_at ASC").
			Scan(&posts).Error; err != nil {
			return err
		}

		if len(posts) > 0 {
			postIDs := make([]uint, 0, len(posts))
			for _, p := range posts {
				postIDs = append(postIDs, p.ID)
			}
			var attachments []models.Attachment
			if err := tx.Where("post_id IN ?", postIDs).Find(&attachments).Error; err != nil {
				return err
			}
			byPost := make(map[uint][]models.Attachment, len(posts))
			for _, att := range attachments {
				byPost[att.PostID] = append(byPost[att.PostID], att)
			}
			for i := range posts {
				if atts, ok := byPost[posts[i].ID]; ok {
					posts[i].Attachments = atts
				} else {
					posts[i].Attachments = []models.Attachment{}
				}
			}
		}
		view.Posts = posts
		return nil
	})
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	if !found {
		utils.Error(ctx, http.StatusNotFound, "Topic not found")
		return
	}
	utils.JSON(ctx, http.StatusOK, view)
}

// list returns topics with author fields, pinned first and most recently
// active first, optionally filtered by category.
func (t *TopicController) list(ctx *gin.Context, categoryID string) {
	topics := make([]models.TopicSummary, 0)
	q := t.db.Table("topics").
		Select(topicAuthorSelect).
		Joins("LEFT JOIN users ON users.id = topics.user_id")
	if categoryID != "" {
		q = q.Where("topics.category_id = ?", categoryID)
	}
	err := q.Order("topics.is_pinned DESC, topics.updated_at DESC").Scan(&topics).Error
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.JSON(ctx, http.StatusOK, topics)
}

// Create inserts a topic and counts it toward the author's posts_count in the
// same transaction.
func (t *TopicController) Create(ctx *gin.Context) {
	var req struct {
		UserID     uint   `json:"user_id"`
		CategoryID uint   `json:"category_id"`
		Title      string `json:"title"`
		Content    string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.UserID == 0 || req.CategoryID == 0 || req.Title == "" || req.Content == "" {
		utils.Error(ctx, http.StatusBadRequest, "Missing required fields")
		return
	}

	topic := models.Topic{
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
		Title:      req.Title,
		Content:    req.Content,
	}
	err := t.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&topic).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", req.UserID).
			UpdateColumn("posts_count", gorm.Expr("posts_count + 1")).Error
	})
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.JSON(ctx, http.StatusCreated, topic)
}
