package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/mynote/mynote-service/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 默认 Token 签发者
const DefaultTokenIssuer = "mynote-service"

// AdminTokenContextKey admin token 在 gin.Context 中的键
const AdminTokenContextKey = "admin_token"

// TokenConfig 定义 Token 管理器的配置
type TokenConfig struct {
	SecretKey string        `yaml:"secret-key"` // JWT 签名密钥
	Expiry    time.Duration `yaml:"expiry"`     // Token 过期时间，默认 7 天
	Issuer    string        `yaml:"issuer"`     // Token 签发者
}

// TokenManager 定义 Token 管理接口
type TokenManager interface {
	Generate(username string) (string, error)
	Parse(token string) (*AdminClaims, error)
	Validate(token string) error
}

// tokenManager 实现 TokenManager 接口
type tokenManager struct {
	config TokenConfig
}

// NewTokenManager 创建一个新的 TokenManager 实例
func NewTokenManager(cfg TokenConfig) TokenManager {
	// 设置默认值
	if cfg.Expiry == 0 {
		cfg.Expiry = 7 * 24 * time.Hour // 默认 7 天
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// AdminClaims represents the admin identity stored in the JWT.
// AdminClaims 表示存储在 JWT 中的管理员身份
// 系统只有两类角色：匿名访客与唯一管理员，令牌只为后者签发
type AdminClaims struct {
	IsAdmin  bool   `json:"isAdmin"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Generate 生成一个新的管理员 JWT Token
func (t *tokenManager) Generate(username string) (string, error) {
	now := time.Now()
	claims := &AdminClaims{
		IsAdmin:  true,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.config.Issuer,
			Subject:   "admin-token",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.config.SecretKey + "_" + util.GetMachineID()))
}

// Parse 解析 JWT Token 并返回管理员信息
func (t *tokenManager) Parse(token string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(t.config.SecretKey + "_" + util.GetMachineID()), nil
	})

	if err != nil {
		return nil, err
	}

	if !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Validate 验证 Token 是否有效
func (t *tokenManager) Validate(token string) error {
	_, err := t.Parse(token)
	return err
}

// ExtractBearerToken pulls the bearer token out of the Authorization header.
// ExtractBearerToken 从 Authorization 请求头提取 bearer token
// 返回空字符串表示请求未携带令牌
func ExtractBearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		auth = c.GetHeader("authorization")
	}
	if auth == "" {
		return ""
	}
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	return auth
}

// IsAdmin reports whether the request context carries a verified admin identity.
// IsAdmin 判断请求上下文是否携带已验证的管理员身份
func IsAdmin(ctx *gin.Context) bool {
	claims, exist := ctx.Get(AdminTokenContextKey)
	if !exist {
		return false
	}
	adminClaims, ok := claims.(*AdminClaims)
	return ok && adminClaims.IsAdmin
}

// GetAdminUsername extracts the admin username from the request context.
// GetAdminUsername 从请求上下文提取管理员用户名
func GetAdminUsername(ctx *gin.Context) (out string) {
	claims, exist := ctx.Get(AdminTokenContextKey)
	if exist {
		if adminClaims, ok := claims.(*AdminClaims); ok {
			out = adminClaims.Username
		}
	}
	return
}
