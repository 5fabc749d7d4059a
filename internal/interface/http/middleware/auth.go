package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/jwt"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/response"
)

// Context键
const (
	callerKey    = "caller"
	tokenKey     = "access_token"
	tokenExpKey  = "access_token_exp"
	requestIDKey = "request_id"
)

// TokenBlacklist 已登出Token的查询接口
// 实现为redis.SessionStore
type TokenBlacklist interface {
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// AuthMiddleware JWT认证中间件
// 1. 从Header提取Bearer Token
// 2. 检查Token黑名单
// 3. 验证Token并把调用者（ID、邮箱、角色）注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 格式：Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token格式错误")
			c.Abort()
			return
		}
		tokenString := parts[1]

		// 已登出的Token在过期前继续被拒绝
		revoked, err := m.blacklist.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if revoked {
			response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err) // ErrTokenExpired、ErrInvalidToken
			c.Abort()
			return
		}

		c.Set(callerKey, access.Caller{
			UserID: claims.UserID,
			Email:  claims.Email,
			Roles:  claims.Roles,
		})
		c.Set(tokenKey, tokenString)
		if claims.ExpiresAt != nil {
			c.Set(tokenExpKey, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// RequireRole 要求拥有指定角色，必须放在RequireAuth之后
func RequireRole(role user.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}
		for _, r := range caller.Roles {
			if name, ok := user.ParseRoleName(r); ok && name == role {
				c.Next()
				return
			}
		}
		response.Error(c, apperrors.ErrForbidden)
		c.Abort()
	}
}

// GetCaller 从Context获取当前调用者
func GetCaller(c *gin.Context) (access.Caller, bool) {
	v, exists := c.Get(callerKey)
	if !exists {
		return access.Caller{}, false
	}
	caller, ok := v.(access.Caller)
	return caller, ok
}

// MustGetCaller 用于已经通过RequireAuth的Handler
func MustGetCaller(c *gin.Context) access.Caller {
	caller, ok := GetCaller(c)
	if !ok {
		panic("caller not found in context")
	}
	return caller
}

// GetAccessToken 当前请求的Access Token及其过期时间（登出时使用）
func GetAccessToken(c *gin.Context) (string, time.Time) {
	token := c.GetString(tokenKey)
	exp, _ := c.Get(tokenExpKey)
	expiresAt, _ := exp.(time.Time)
	return token, expiresAt
}
