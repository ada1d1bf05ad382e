package utils

import "github.com/gin-gonic/gin"

// RequestIDKey is the gin context key carrying the request id assigned by the
// request-id middleware.
const RequestIDKey = "request_id"

// JSON writes a success payload. Content-Type application/json comes from
// gin's JSON renderer; CORS headers come from the resource middleware.
func JSON(ctx *gin.Context, status int, payload interface{}) {
	ctx.JSON(status, payload)
}

// Error writes the uniform error body used by every resource.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

// InternalError logs the underlying fault and answers with a generic 500 so
// store errors never leak to callers.
func InternalError(ctx *gin.Context, err error) {
	if Sugar != nil {
		Sugar.Errorw("request failed",
			"request_id", ctx.GetString(RequestIDKey),
			"path", ctx.FullPath(),
			"error", err,
		)
	}
	Error(ctx, 500, "internal server error")
}
