package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qwikyankit/qwiky-backend/internal/app/pkg/logger"
)

// Recovery panic 恢复中间件，panic 转为 500 响应
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf(c.Request.Context(), "panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"meta": gin.H{
						"code":    http.StatusInternalServerError,
						"message": "internal server error",
					},
				})
			}
		}()
		c.Next()
	}
}
