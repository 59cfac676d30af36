package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/asset-store/internal/pkg/httputil"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("stack", string(debug.Stack())),
					zap.String("request_id", httputil.GetRequestID(c)),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httputil.ErrorResponse{
					Error:     "internal server error",
					Code:      "INTERNAL_ERROR",
					RequestID: httputil.GetRequestID(c),
				})
			}
		}()
		c.Next()
	}
}
