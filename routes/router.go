package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cosmay/forumhub/config"
	"github.com/cosmay/forumhub/controllers"
	"github.com/cosmay/forumhub/middleware"
	"github.com/cosmay/forumhub/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB, cfg config.AppConfig) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())

	// Access log through zap instead of gin's console logger.
	if gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, true))
	} else {
		r.Use(gin.Recovery())
	}

	r.GET("/health", func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		utils.JSON(ctx, http.StatusOK, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db, cfg.TokenSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	forumController := controllers.NewForumController(db)
	topicController := controllers.NewTopicController(db)
	postController := controllers.NewPostController(db)
	likeController := controllers.NewLikeController(db)

	auth := r.Group("/auth", resourceCORS("POST", "OPTIONS"), middleware.RateLimit(cfg.RateLimitPerMinute))
	auth.POST("", authController.Handle)
	auth.OPTIONS("", preflight)

	forums := r.Group("/forums", resourceCORS("GET", "POST", "PUT", "OPTIONS"))
	forums.GET("", forumController.List)
	forums.POST("", forumController.Create)
	forums.OPTIONS("", preflight)

	topics := r.Group("/topics", resourceCORS("GET", "POST", "PUT", "OPTIONS"))
	topics.GET("", topicController.Get)
	topics.POST("", topicController.Create)
	topics.OPTIONS("", preflight)

	posts := r.Group("/posts", resourceCORS("POST", "PUT", "OPTIONS"))
	posts.POST("", postController.Create)
	posts.OPTIONS("", preflight)

	likes := r.Group("/likes", resourceCORS("POST", "OPTIONS"))
	likes.POST("", likeController.Toggle)
	likes.OPTIONS("", preflight)

	r.NoMethod(func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		utils.Error(ctx, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(ctx *gin.Context) {
		ctx.Header("Access-Control-Allow-Origin", "*")
		utils.Error(ctx, http.StatusNotFound, "Not found")
	})

	return r
}

// resourceCORS builds the CORS policy for one resource: any origin, the
// resource's own method allow-list, and a 200 preflight answer.
func resourceCORS(methods ...string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              methods,
		AllowHeaders:              []string{"Content-Type", "X-User-Id"},
		MaxAge:                    24 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})
}

// preflight is the fallthrough for OPTIONS requests without CORS headers; the
// CORS middleware answers real preflights before this runs.
func preflight(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}
