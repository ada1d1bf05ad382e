package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmay/forumhub/utils"
)

// RequestID assigns every request an id for log correlation and echoes it in
// the X-Request-Id response header. Incoming ids are honored so callers can
// trace across hops.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(utils.RequestIDKey, id)
		ctx.Header("X-Request-Id", id)
		ctx.Next()
	}
}
