package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/utils"
)

// LikeController toggles likes on posts.
type LikeController struct {
	db *gorm.DB
}

// NewLikeController creates a LikeController.
func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{db: db}
}

// Toggle flips the like state for a (user, post) pair. The insert is
// attempted first and the unique index is the authority: a duplicate-key
// error means "already liked" and turns the call into an unlike. No prior
// read, so concurrent toggles cannot double-count.
func (l *LikeController) Toggle(ctx *gin.Context) {
	var req struct {
		UserID uint `json:"user_id"`
		PostID uint `json:"post_id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.UserID == 0 || req.PostID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "Missing user_id or post_id")
		return
	}

	var action string
	var likesCount int
	err := l.db.Transaction(func(tx *gorm.DB) error {
		like := models.Like{UserID: req.UserID, PostID: req.PostID}
		switch err := tx.Create(&like).Error; {
		case err == nil:
			action = "liked"
			if err := tx.Model(&models.Post{}).Where("id = ?", req.PostID).
				UpdateColumn("likes_count", gorm.Expr("likes_count + 1")).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrDuplicatedKey):
			action = "unliked"
			if err := tx.Where("user_id = ? AND post_id = ?", req.UserID, req.PostID).
				Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", req.PostID).
				UpdateColumn("likes_count", gorm.Expr("likes_count - 1")).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&models.Post{}).Select("likes_count").
			Where("id = ?", req.PostID).Scan(&likesCount).Error
	})
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}
	utils.JSON(ctx, http.StatusOK, gin.H{"action": action, "likes_count": likesCount})
}
