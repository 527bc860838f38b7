package middleware

import (
	pkgapp "github.com/mynote/mynote-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// OptionalAuthToken 可选 Token 认证中间件
// 有效令牌写入上下文，缺失或无效一律按匿名放行
func OptionalAuthToken(tm pkgapp.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := pkgapp.ExtractBearerToken(c)
		if token != "" {
			if claims, err := tm.Parse(token); err == nil && claims.IsAdmin {
				c.Set(pkgapp.AdminTokenContextKey, claims)
			}
		}
		c.Next()
	}
}
