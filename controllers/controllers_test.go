package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cosmay/forumhub/models"
	"github.com/cosmay/forumhub/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ForumCategory{},
		&models.Topic{},
		&models.Post{},
		&models.Attachment{},
		&models.Like{},
	); err != nil {
		t.Fatalf("auto migration failed: %v", err)
	}
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := NewAuthController(db, "test-secret", time.Hour)
	r.POST("/auth", auth.Handle)

	forums := NewForumController(db)
	r.GET("/forums", forums.List)
	r.POST("/forums", forums.Create)

	topics := NewTopicController(db)
	r.GET("/topics", topics.Get)
	r.POST("/topics", topics.Create)

	r.POST("/posts", NewPostController(db).Create)
	r.POST("/likes", NewLikeController(db).Toggle)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) models.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: username, Email: email, PasswordHash: hash, Role: "member"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string, sortOrder int) models.ForumCategory {
	t.Helper()
	cat := models.ForumCategory{Name: name, Icon: "MessageSquare", Gradient: "gradient-purple-pink", SortOrder: sortOrder}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return cat
}

func seedTopic(t *testing.T, db *gorm.DB, categoryID, userID uint, title string) models.Topic {
	t.Helper()
	topic := models.Topic{CategoryID: categoryID, UserID: userID, Title: title, Content: "content of " + title}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	return topic
}

func seedPost(t *testing.T, db *gorm.DB, topicID, userID uint, content string) models.Post {
	t.Helper()
	post := models.Post{TopicID: topicID, UserID: userID, Content: content}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}
