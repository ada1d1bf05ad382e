package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/utils"
)

// AuthController handles registration and login. Session tokens are minted on
// success and returned as opaque bearer values; nothing here stores or
// verifies them.
type AuthController struct {
	db          *gorm.DB
	tokenSecret string
	tokenTTL    time.Duration
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB, tokenSecret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{db: db, tokenSecret: tokenSecret, tokenTTL: tokenTTL}
}

// Handle dispatches POST /auth by the action field of the body.
func (a *AuthController) Handle(ctx *gin.Context) {
	var req struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Action == "" {
		req.Action = "login"
	}

	switch req.Action {
	case "register":
		a.register(ctx, req.Username, req.Email, req.Password)
	case "login":
		a.login(ctx, req.Email, req.Password)
	default:
		utils.Error(ctx, http.StatusBadRequest, "Invalid action")
	}
}

func (a *AuthController) register(ctx *gin.Context, username, email, password string) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		utils.Error(ctx, http.StatusBadRequest, "Missing required fields")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         "member",
	}
	// No uniqueness pre-check: the unique indexes on username and email are
	// the authority, and a violation surfaces like any other store fault.
	if err := a.db.Create(&user).Error; err != nil {
		utils.InternalError(ctx, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, a.tokenSecret, a.tokenTTL)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.JSON(ctx, http.StatusCreated, gin.H{"user": user, "token": token})
}

func (a *AuthController) login(ctx *gin.Context, email, password string) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		utils.Error(ctx, http.StatusBadRequest, "Missing email or password")
		return
	}

	var user models.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.InternalError(ctx, err)
		return
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		utils.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, a.tokenSecret, a.tokenTTL)
	if err != nil {
		utils.InternalError(ctx, err)
		return
	}

	utils.JSON(ctx, http.StatusOK, gin.H{"user": user, "token": token})
}
