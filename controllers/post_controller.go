package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/utils"
)

// PostController manages replies inside topics.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a PostController.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// Create inserts a reply with its attachments and fires the counter cascade:
// topic replies_count +1 with an updated_at bump, author posts_count +1.
// Everything happens in one transaction; a failure anywhere rolls back the
// post, its attachments, and both counters together.
func (p *PostController) Create(ctx *gin.Context) {
	var req struct {
		TopicID     uint   `json:"topic_id"`
		UserID      uint   `json:"user_id"`
		Content     string `json:"content"`
		Attachments []struct {
			URL  string `json:"url"`
			Type string `json:"type"`
			Name string `json:"name"`
			Size int64  `json:"size"`
		} `json:"attachments"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.TopicID == 0 || req.UserID == 0 || req.Content == "" {
		utils.Error(ctx, http.StatusBadRequest, "Missing required fields")
		return
	}

	post := models.Post{
		TopicID: req.TopicID,
		UserID:  req.UserID,
		Content: req.Content,
	}
	err := p.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		if len(req.Attachments) > 0 {
			attachments := make([]models.Attachment, 0, len(req.Attachments))
			for _, att := range req.Attachments {
				attachments = append(attachments, models.Attachment{
					PostID:   post.ID,
					FileURL:  att.URL,
					FileType: att.Type,
					FileName: att.Name,
					FileSize: att.Size,
				})
			}
			if err := tx.Create(&attachments).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Topic{}).Where("id = ?", req.TopicID).
			UpdateColumns(map[string]interface{}{
				"replies_count": gorm.Expr("replies_count + 1"),
				"updated_at":    time.Now(),
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", req.UserID).
			UpdateColumn("posts_count", gorm.Expr("posts_count + 1")).Error
	})
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.JSON(ctx, http.StatusCreated, post)
}
