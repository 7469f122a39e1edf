package middleware

import (
	"net/http"
	"strings"

	"sentinel-vault-service/config"
	"sentinel-vault-service/services"

	"github.com/gin-gonic/gin"
)

var (
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
)

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, redis services.InterfaceRedisService) {
	jwtService = services.NewJWTService(cfg)
	redisService = redis
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// requireRoles 校验令牌并检查角色，claims写入上下文。
// 令牌损坏、过期或已吊销一律返回401，客户端收到后清除本地会话。
func requireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Authorization header is required",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 提取并校验token
		tokenString := extractToken(authHeader)
		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Invalid token: " + err.Error(),
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 已注销的令牌视为无效
		if redisService != nil && redisService.IsTokenRevoked(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token has been revoked",
				"data":    nil,
			})
			c.Abort()
			return
		}

		// 检查角色
		if len(allowed) > 0 {
			permitted := false
			for _, role := range allowed {
				if claims.Role == role {
					permitted = true
					break
				}
			}
			if !permitted {
				c.JSON(http.StatusForbidden, gin.H{
					"code":    403,
					"message": "Insufficient permissions for role: " + claims.Role,
					"data":    nil,
				})
				c.Abort()
				return
			}
		}

		// 存储claims到上下文
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("tokenID", claims.ID)
		c.Set("claims", claims)
		c.Next()
	}
}

// Authentication 通用的认证中间件，任意合法角色均可访问
func Authentication() gin.HandlerFunc {
	return requireRoles("admin", "police", "health")
}

// AuthenticateAdmin 验证灾害指挥中心权限
func AuthenticateAdmin() gin.HandlerFunc {
	return requireRoles("admin")
}

// AuthenticatePolice 验证警察/救援权限，指挥中心同样可以访问
func AuthenticatePolice() gin.HandlerFunc {
	return requireRoles("police", "admin")
}

// AuthenticateHealth 验证卫生部门权限，指挥中心同样可以访问
func AuthenticateHealth() gin.HandlerFunc {
	return requireRoles("health", "admin")
}
