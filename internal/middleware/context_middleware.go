package middleware

import (
	"go-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger puts a request-scoped logger on the standard context so the
// service and repository layers can log without knowing about gin.
// It must run after RequestID.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		meta := contextutil.ExtractMetadata(ctx)

		reqLogger := logger.With(
			zap.String("request_id", meta.RequestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("account_id", c.GetString("account_id")),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		reqLogger.Debug("request completed", fields...)
	}
}
