package middleware

import (
	"errors"
	"net/http"

	"Globetrek/dao"
	"Globetrek/pkg/context"
	"Globetrek/pkg/log"
	"Globetrek/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CurrentUser 身份解析关卡: 按令牌声明回源查出用户现行记录。
// 令牌合法但账号已注销时返回 404，与 401 区分开。
// 所有写操作与隐私接口必须挂这层，公共只读接口跳过
func CurrentUser(users *dao.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := context.GetClaims(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := users.FindById(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusNotFound, "user not found")
				return
			}
			log.L.Error("resolve current user", zap.Uint64("user_id", claims.UserID), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}

		c.Set(context.CtxUser, user)

		c.Next()
	}
}
