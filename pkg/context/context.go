package context

import (
	"errors"
	"net/http"

	"Globetrek/models"
	"Globetrek/pkg/jwt"
	"Globetrek/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxClaims = "claims"
	CtxUser   = "current_user"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(be.Code, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

// GetClaims 获取认证中间件写入的令牌声明
func GetClaims(c *gin.Context) (*jwt.Claims, error) {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil, errors.New("claims has wrong type")
	}

	return claims, nil
}

// GetCurrentUser 获取身份解析中间件写入的当前用户
func GetCurrentUser(c *gin.Context) (*models.User, error) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil, errors.New("current_user not found in context")
	}

	user, ok := v.(*models.User)
	if !ok {
		return nil, errors.New("current_user has wrong type")
	}

	return user, nil
}

func GetUserID(c *gin.Context) (uint64, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
