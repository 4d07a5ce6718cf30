package middleware

import (
	"net/http"

	"Globetrek/pkg/context"
	"Globetrek/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAdmin 授权关卡: 角色不足返回 403，与未登录的 401 区分开
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := context.GetCurrentUser(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		if !user.IsAdmin() {
			response.Abort(c, http.StatusForbidden, "admin role required")
			return
		}

		c.Next()
	}
}
