package service

import (
	"errors"
	"fmt"
)

// 业务错误分类，handler 层据此映射 HTTP 状态码:
// 401 未认证 / 404 不存在 / 403 无权限 / 409 并发冲突 / 500 级联失败
var (
	ErrNotFound           = errors.New("record not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict, please retry")
	ErrCascadeFailure     = errors.New("cascade delete failed, nothing was deleted")
	ErrInvalidCredentials = errors.New("email or password invalid")
	ErrEmailTaken         = errors.New("email or username already registered")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain upper, lower, digit and special characters")
)

// CountryTransferError 管理员名下尚有国家时拒绝注销，并报出需要转移的数量
type CountryTransferError struct {
	Count int64
}

func (e *CountryTransferError) Error() string {
	return fmt.Sprintf("you have %d countries in your account, transfer them to another admin before deleting the account", e.Count)
}
