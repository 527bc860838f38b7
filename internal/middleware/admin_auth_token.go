package middleware

import (
	pkgapp "github.com/mynote/mynote-service/pkg/app"
	"github.com/mynote/mynote-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// AdminAuthToken 管理员 Token 认证中间件
// 缺失或无效的令牌直接拒绝请求
func AdminAuthToken(tm pkgapp.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := pkgapp.NewResponse(c)

		token := pkgapp.ExtractBearerToken(c)
		if token == "" {
			response.ToResponse(code.ErrorNotAuthToken)
			c.Abort()
			return
		}

		claims, err := tm.Parse(token)
		if err != nil || !claims.IsAdmin {
			response.ToResponse(code.ErrorInvalidAuthToken)
			c.Abort()
			return
		}

		c.Set(pkgapp.AdminTokenContextKey, claims)
		c.Next()
	}
}
