package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Globetrek/pkg/response"
	"Globetrek/service"

	"github.com/gin-gonic/gin"
)

// httpError 业务错误映射到 HTTP 状态码:
// 401 凭证无效 / 404 目标不存在 / 403 权限不足 / 409 并发冲突 / 500 级联失败
// 级联失败不向外透出存储层细节
func httpError(err error) error {
	var transferErr *service.CountryTransferError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.As(err, &transferErr):
		return response.NewError(http.StatusForbidden, transferErr.Error())
	case errors.Is(err, service.ErrForbidden):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrEmailTaken):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrWeakPassword):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCascadeFailure):
		return response.NewError(http.StatusInternalServerError, service.ErrCascadeFailure.Error())
	default:
		return err
	}
}

func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
