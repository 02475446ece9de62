package middleware

import (
	"net/http"
	"strings"

	"go-splendor/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey gin.Context 中保存当前用户 ID 的 key
const UserIDKey = "userID"

// AuthMiddleware 校验 Authorization: Bearer <access token>
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status_code": http.StatusUnauthorized, "msg": "未授权"})
			return
		}
		claims, err := tokens.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status_code": http.StatusUnauthorized, "msg": "token 无效或已过期"})
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID 取出当前用户 ID
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
