package middleware

import (
	"net/http"
	"strings"

	"Globetrek/pkg/context"
	"Globetrek/pkg/jwt"
	"Globetrek/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 认证关卡: 只做令牌格式与签名校验，不碰存储。
// 缺失、格式错误、签名无效、已过期一律 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(context.CtxClaims, claims)

		c.Next()
	}
}
